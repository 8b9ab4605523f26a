package constants

import "regexp"

// Custom emoji mentions look like <:name:id> or <a:name:id> for animated ones.
var DiscordEmojiRegex = regexp.MustCompile(`(?i)<a?(:[^\s:]+:)\w+>`)
var DiscordEmojiIdRegex = regexp.MustCompile(`:\w+>`)
var CleanIdRegex = regexp.MustCompile(`(:|>)`)
