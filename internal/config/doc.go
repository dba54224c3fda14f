// Package config provides local-first configuration for the carousel program.
//
// Configuration lives in the project's .carousel/ directory:
//
//	.carousel/
//	├── config.json        # Settings (committed to git)
//	├── .gitignore         # Keeps logs out of git
//	└── debug.log          # Written when debug is on
//
// The config.json file contains simple key-value settings:
//
//	{
//	  "theme": "loco",
//	  "allow_scroll": true,
//	  "hide_scroll_bar": false,
//	  "gap": 1,
//	  "focused_index": 0,
//	  "settle_delay_ms": 500,
//	  "debug": false,
//	  "log_level": "info",
//	  "log_format": "text"
//	}
//
// String values may reference environment variables using $VAR or ${VAR}:
//
//	{
//	  "theme": "${CAROUSEL_THEME}"
//	}
//
// Unset variables are left as written.
package config
