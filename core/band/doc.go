// Package band describes radio band profiles: the channel plan, the
// frequency of every channel and the CTCSS tones allowed on the band.
// Profiles are looked up by name through a Registry, which ships with the
// builtin PMRS and PMR446 plans and accepts extra profiles loaded from
// configuration or a YAML/JSON profiles file.
package band
