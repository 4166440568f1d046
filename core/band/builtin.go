package band

// CTCSSTones is the standard list of 38 sub-audible tones in Hz.
var CTCSSTones = []float64{
	67.0, 71.9, 74.4, 77.0, 79.7, 82.5, 85.4, 88.5, 91.5, 94.8,
	97.4, 100.0, 103.5, 107.2, 110.9, 114.8, 118.8, 123.0, 127.3,
	131.8, 136.5, 141.3, 146.2, 151.4, 156.7, 162.2, 167.9, 173.8,
	179.9, 186.2, 192.8, 203.5, 210.7, 218.1, 225.7, 233.6, 241.8, 250.3,
}

// PMRSBand is the 22 channel UHF personal radio plan.
var PMRSBand = Band{
	Name: PMRS,
	Channels: []Channel{
		{1, "462.5625"}, {2, "462.5875"}, {3, "462.6125"}, {4, "462.6375"},
		{5, "462.6625"}, {6, "462.6875"}, {7, "462.7125"}, {8, "467.5625"},
		{9, "467.5875"}, {10, "467.6125"}, {11, "467.6375"}, {12, "467.6625"},
		{13, "467.6875"}, {14, "467.7125"}, {15, "462.5500"}, {16, "462.5750"},
		{17, "462.6000"}, {18, "462.6250"}, {19, "462.6500"}, {20, "462.6750"},
		{21, "462.7000"}, {22, "462.7250"},
	},
	Tones: CTCSSTones,
}

// PMR446Band is the 16 channel European licence-free plan.
var PMR446Band = Band{
	Name: PMR446,
	Channels: []Channel{
		{1, "446.00625"}, {2, "446.01875"}, {3, "446.03125"}, {4, "446.04375"},
		{5, "446.05625"}, {6, "446.06875"}, {7, "446.08125"}, {8, "446.09375"},
		{9, "446.10625"}, {10, "446.11875"}, {11, "446.13125"}, {12, "446.14375"},
		{13, "446.15625"}, {14, "446.16875"}, {15, "446.18125"}, {16, "446.19375"},
	},
	Tones: CTCSSTones,
}

// Builtin returns copies of the bands shipped with the tool.
func Builtin() []Band {
	return []Band{PMRSBand.clone(), PMR446Band.clone()}
}
