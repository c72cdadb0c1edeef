package config

const (
	defaultAssetsDir = "~/.local/share/montage/assets"
	defaultLogDir    = "~/.local/share/montage/logs"
	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults.
//
// TimelineDir and AudioDir intentionally default to empty: normalize derives
// them from AssetsDir (assets/timeline and assets/audio) so a single
// assets_dir override relocates the whole tree.
func Default() Config {
	return Config{
		Paths: Paths{
			AssetsDir: defaultAssetsDir,
			LogDir:    defaultLogDir,
		},
		Timeline: Timeline{
			OverwriteExisting:  true,
			ValidateAfterWrite: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
