package config

import (
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	Archives     = kingpin.Arg("archives", "Chart archives (.osz), as paths or http(s) URLs").Required().Strings()
	OD           = kingpin.Flag("od", "Overall difficulty, negative to use the chart's").Default("-1").Float64()
	Offset       = kingpin.Flag("offset", "Global offset").Default("0ms").Short('o').Duration()
	FramePeriod  = kingpin.Flag("frame-period", "Render frame period").Default("4ms").Short('p').Duration()
	ScrollSpeed  = kingpin.Flag("scroll-speed", "Rows per second, overrides the settings file").Short('s').Float64()
	KeyString    = kingpin.Flag("keys", "Keys for the four lanes, overrides the settings file").Short('k').String()
	SettingsFile = kingpin.Flag("settings", "Settings file").Default("fourk.ini").String()
	Database     = kingpin.Flag("db", "Score database").Default("./scores.db").String()
	LogFile      = kingpin.Flag("log", "Log file").Default("fourk.log").String()
	Jobs         = kingpin.Flag("jobs", "Archives to decode at once").Default("4").Short('j').Int()
)

// DefaultOD applies when neither the flag nor the chart give one.
const DefaultOD = 7.0

func Parse() {
	kingpin.Version("0.3.0")
	kingpin.Parse()
}
