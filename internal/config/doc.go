// Package config loads roster's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/roster/config.toml
//  3. If the file doesn't exist, fall back to Default()
//  4. If the file exists but fields are missing or empty, use defaults
//
// # TOML Format
//
//	endpoint = "https://randomuser.me/api/"
//	seed = "abc"
//	fetch_size = 50        # records requested per upstream page
//	page_size = 10         # display page size used for the page count
//	total_results = 1000   # the upstream reports no total; this is the assumed one
//	request_timeout = "10s"
//	action_delay = "1s"    # simulated edit/flag/delete latency
//	notice_ttl = "3s"
//	locale = "und"         # BCP 47 tag used for name/email collation
//	log_file = "~/.local/state/roster/roster.log"
//	log_level = "info"
//
// Durations use time.ParseDuration syntax. Tilde expansion is applied to
// log_file.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, malformed TOML, bad durations and bad locale tags. Every
// parse failure mentions "parse config".
//
// Note that fetch_size and page_size are independent: the page count shown in
// the UI is ceil(total_results/page_size) while each page turn fetches
// fetch_size records.
package config
