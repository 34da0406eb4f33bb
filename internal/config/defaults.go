package config

import "time"

const (
	defaultAddr         = ":5000"
	defaultDocumentsDir = "documentos"
	defaultStaticDir    = "static"
	defaultRenderEngine = EngineExec
	defaultDotBinary    = "dot"
	defaultLogLevel     = "info"
	defaultLogFormat    = "text"

	// DefaultPath is read when no config file is given and it exists.
	DefaultPath = "nbserve.yaml"
)

// Render engines.
const (
	EngineExec     = "exec"
	EngineGraphviz = "graphviz"
)

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Server: Server{Addr: defaultAddr},
		Paths: Paths{
			DocumentsDir: defaultDocumentsDir,
			StaticDir:    defaultStaticDir,
		},
		Render: Render{
			Engine:    defaultRenderEngine,
			DotBinary: defaultDotBinary,
			Timeout:   time.Duration(0),
		},
		Log: Log{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
