package config

const (
	defaultStateDir    = "~/.local/share/pixpress"
	defaultWebPBinary  = "cwebp"
	defaultAVIFBinary  = "avifenc"
	defaultAVIFSpeed   = 0
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
	defaultLedgerState = true
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			StateDir: defaultStateDir,
		},
		WebP: WebP{
			Binary: defaultWebPBinary,
		},
		AVIF: AVIF{
			Binary: defaultAVIFBinary,
			Speed:  defaultAVIFSpeed,
		},
		Ledger: Ledger{
			Enabled: defaultLedgerState,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
