package game

// HitObject is one line of the HitObjects section.
type HitObject struct {
	X      int
	Time   int // ms from the start of the audio
	Type   int // bitmask, see TypeCircle etc.
	Params []int
	Sample []int

	SampleFile string // custom hit sound, usually empty
}

const (
	TypeCircle   = 1 << 0
	TypeSlider   = 1 << 1
	TypeNewCombo = 1 << 2
	TypeSpinner  = 1 << 3
	TypeHold     = 1 << 7
)

// The following are modeled for completeness, the parser never fills them.
type Event struct {
	Type      string
	StartTime int
	Params    string
}

type Background struct {
	Filename string
	XOffset  int
	YOffset  int
}

type Break struct {
	StartTime int
	EndTime   int
}

type TimingPoint struct {
	Time        int
	BeatLength  float64
	Meter       int
	SampleSet   int
	SampleIndex int
	Volume      int
	Uninherited bool
	Effects     int
}

// Chart is a single parsed difficulty. It is not modified after parsing.
type Chart struct {
	General    map[string]string
	Metadata   map[string]string
	Difficulty map[string]string

	Events       []Event
	Backgrounds  []Background
	Breaks       []Break
	TimingPoints []TimingPoint
	HitObjects   []HitObject

	// Hex sha256 of the source text
	Checksum string
}

func NewChart() *Chart {
	return &Chart{
		General:    map[string]string{},
		Metadata:   map[string]string{},
		Difficulty: map[string]string{},
	}
}

func (c *Chart) Title() string {
	if t, ok := c.Metadata["Title"]; ok {
		return t
	}
	return "Unknown"
}

func (c *Chart) Version() string {
	return c.Metadata["Version"]
}

func (c *Chart) AudioFilename() string {
	return c.General["AudioFilename"]
}

// LastTime is the time of the final hit object, 0 if there are none.
func (c *Chart) LastTime() int {
	if len(c.HitObjects) == 0 {
		return 0
	}
	return c.HitObjects[len(c.HitObjects)-1].Time
}
