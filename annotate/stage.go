package annotate

// Stage is how far a run got before it returned.
type Stage int

const (
	Idle Stage = iota
	TextCollected
	WallpaperQueried
	PathsResolved
	Rendered
	Fallback
	Activated
)

var stageNames = [...]string{
	Idle:             "idle",
	TextCollected:    "text-collected",
	WallpaperQueried: "wallpaper-queried",
	PathsResolved:    "paths-resolved",
	Rendered:         "rendered",
	Fallback:         "fallback",
	Activated:        "activated",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "unknown"
	}
	return stageNames[s]
}
