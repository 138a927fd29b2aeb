package scraper

import (
	"log/slog"
	"os"

	"github.com/use-agent/farescan/config"
)

// DumpPage writes a fetched page to the configured dump path for offline
// inspection. Pages below the minimum size are skipped since they're almost
// always consent walls or empty shells. Write failures are logged, never
// propagated; dumping is diagnostics, not part of the search path.
func DumpPage(markup string, cfg config.DebugConfig) {
	if !cfg.DumpPages || len(markup) < cfg.DumpMinBytes {
		return
	}
	if err := os.WriteFile(cfg.DumpPath, []byte(markup), 0o644); err != nil {
		slog.Warn("debug: page dump failed", "path", cfg.DumpPath, "error", err)
		return
	}
	slog.Debug("debug: page dumped", "path", cfg.DumpPath, "bytes", len(markup))
}
