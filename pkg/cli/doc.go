// Package cli implements the gridcraft command line.
//
// # Commands
//
// recipes - List the recipes registered by scripts:
//
//	gridcraft recipes --script recipes.lua [--actions] [--format yaml|json|table]
//
// convert - Show the host-native form of each recipe:
//
//	gridcraft convert --script recipes.lua --format table
//
// Exact-item recipes are shown as a dense item table, tagged recipes as a
// symbol pattern with keys, and dynamic recipes without native contents.
//
// craft - Craft grid files against the registered recipes:
//
//	gridcraft craft --script recipes.lua --grid torch.yaml --grid pick.yaml --actor steve
//
// Grids are crafted concurrently, bounded by --parallel. Each grid is
// reported with its output, the offset the recipe matched at and the grid
// after crafting.
//
// # Global Flags
//
//	--log-level     Log level: debug, info, warn, error (env GRIDCRAFT_LOG_LEVEL)
//	--metrics-file  Write Prometheus metrics on exit (env GRIDCRAFT_METRICS_FILE)
//
// # Script Flags
//
//	--script, -s      Lua script, repeatable, run in order
//	--script-timeout  Limit for running the scripts
//	--trace           Log templates and resolved outputs at debug level
//	--output, -o      Output file path (default: stdout)
//	--format, -t      Output format: yaml, json, table (default: yaml)
//
// # Exit Codes
//
//	0  Success
//	1  Invalid arguments, script failure or crafting failure
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/gridcraft/gridcraft/pkg/cli.version=1.0.0'"
package cli
