package roles

import (
	"github.com/disgoorg/snowflake/v2"
	"github.com/forPelevin/gomoji"

	"github.com/harvey-bot/harvey/constants"
)

// parseEmojiInput extracts a custom emoji ID from admin input: a mention
// like <:hammer:123> or <a:party:456>, or a bare numeric ID. Default
// (unicode) emojis carry no guild identifier, so they can never back a
// binding and are rejected outright.
func parseEmojiInput(input string) (string, error) {
	if constants.DiscordEmojiRegex.FindString(input) != "" {
		matches := constants.DiscordEmojiRegex.FindAllString(input, 2)
		if len(matches) > 1 {
			return "", &UnsupportedEmojiError{
				Input:  input,
				Reason: "expected a single emoji",
			}
		}

		id := constants.CleanIdRegex.ReplaceAllString(
			constants.DiscordEmojiIdRegex.FindString(input),
			"",
		)
		// The mention regex accepts any word characters in the ID slot;
		// only a real snowflake may reach the platform.
		if _, err := snowflake.Parse(id); err != nil {
			return "", &UnsupportedEmojiError{
				Input:  input,
				Reason: "the mention does not carry a valid emoji ID",
			}
		}

		return id, nil
	}

	if len(gomoji.FindAll(input)) > 0 {
		return "", &UnsupportedEmojiError{
			Input:  input,
			Reason: "default emojis cannot carry a role, use a custom emoji of this server",
		}
	}

	if _, err := snowflake.Parse(input); err == nil {
		return input, nil
	}

	return "", &UnsupportedEmojiError{
		Input:  input,
		Reason: "not an emoji mention or emoji ID",
	}
}
