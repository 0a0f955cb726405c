package config

import "strings"

// envReplacer maps nested keys to env names: author.name → UPMKIT_AUTHOR_NAME.
var envReplacer = strings.NewReplacer(".", "_")
