package chat

import (
	"context"
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"

	"github.com/Devp21/talentscout-hiring-chatbot/internal/interview"
)

// Run drives one interview session over the terminal, printing the
// engine's prompts and feeding the candidate's lines back as turns.
func Run(ctx context.Context, engine *interview.Engine) error {
	result := engine.StartSession()
	fmt.Println("\n🤖 " + result.Prompt)

	prompt := promptui.Prompt{
		Label:     "You",
		AllowEdit: true,
	}

	for !result.Terminal {
		input, err := prompt.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				// Close the session gracefully so the partial record
				// is still handed to persistence.
				if result.Stage == interview.StageInterview {
					if closed, cerr := engine.SubmitTurn(ctx, result.SessionID, "end"); cerr == nil {
						fmt.Println("\n🤖 " + closed.Prompt)
					}
				}
				return nil
			}
			return fmt.Errorf("error reading input: %w", err)
		}

		result, err = engine.SubmitTurn(ctx, result.SessionID, input)
		if err != nil {
			return fmt.Errorf("error processing turn: %w", err)
		}

		fmt.Println("\n🤖 " + result.Prompt)
	}

	return nil
}
