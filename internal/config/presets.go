package config

import "sort"

// Presets are common coding schemes for dyadic interaction data.
var Presets = map[string]*Config{
	"affect5": {
		Columns: ColumnConfig{X: DefaultXColumn, Y: DefaultYColumn, Time: DefaultTimeColumn},
		XRange:  labels(1, 5),
		YRange:  labels(1, 5),
	},
	"affect5-dyads": {
		Columns: ColumnConfig{X: DefaultXColumn, Y: DefaultYColumn, Time: DefaultTimeColumn, ID: "ID"},
		XRange:  labels(1, 5),
		YRange:  labels(1, 5),
	},
	"affect3": {
		Columns: ColumnConfig{X: DefaultXColumn, Y: DefaultYColumn, Time: DefaultTimeColumn},
		XRange:  []string{"bad", "ok", "good"},
		YRange:  []string{"bad", "ok", "good"},
	},
	"valence": {
		Columns: ColumnConfig{X: "Parent", Y: "Child", Time: "Time"},
		XRange:  []string{"negative", "neutral", "positive"},
		YRange:  []string{"negative", "neutral", "positive"},
	},
}

// GetPreset returns a full config with the preset's columns and ranges applied,
// or nil when the preset does not exist.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Columns.X = p.Columns.X
	cfg.Columns.Y = p.Columns.Y
	cfg.Columns.Time = p.Columns.Time
	cfg.Columns.ID = p.Columns.ID
	cfg.XRange = append([]string(nil), p.XRange...)
	cfg.YRange = append([]string(nil), p.YRange...)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
