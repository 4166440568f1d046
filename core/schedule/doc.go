package schedule

// Package schedule derives a recurring radio rendezvous schedule from two
// dates of birth. The dates seed a private pseudo-random stream that assigns
// three five minute windows per day (morning, afternoon, evening), each with
// a channel and a CTCSS tone taken from a band profile. Recently used times,
// channels and tones are held back so nearby windows do not repeat. Two
// quick-connect rendezvous points are derived from the dates alone.
//
// Generation is a pure function of the two dates, the rotation length and the
// band name. The start date only labels the days.
