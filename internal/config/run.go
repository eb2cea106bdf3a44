package config

type RunConfig struct {
	Search SearchConfig `yaml:"search"`
	Log    LogConfig    `yaml:"log"`
	Trace  TraceConfig  `yaml:"trace"`
	Gen    GenConfig    `yaml:"gen"`
}

type SearchConfig struct {
	Workers int `yaml:"workers"` // 0 = GOMAXPROCS, 1 = sequential
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text | json
}

type TraceConfig struct {
	Path string `yaml:"path"` // baseline event log; empty disables
}

type GenConfig struct {
	Rows    int     `yaml:"rows"`
	Cols    int     `yaml:"cols"`
	Density float64 `yaml:"density"`
	Seed    int64   `yaml:"seed"`
}
