package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Game input commands",
	}

	cmd.AddCommand(newPlayMoveCmd())
	cmd.AddCommand(newPlayRotateCmd())
	cmd.AddCommand(newPlayDropCmd())
	cmd.AddCommand(newPlayIntentCmd("pause", "Pause the game", "pause"))
	cmd.AddCommand(newPlayIntentCmd("resume", "Resume a paused game", "resume"))
	cmd.AddCommand(newPlayIntentCmd("restart", "Restart the game from scratch", "restart"))

	return cmd
}

func newPlayMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move <id> <left|right|down>",
		Short: "Move the current piece",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var intent string
			switch args[1] {
			case "left":
				intent = "move_left"
			case "right":
				intent = "move_right"
			case "down":
				intent = "soft_drop"
			default:
				return fmt.Errorf("direction must be left, right or down")
			}

			return sendInput(args[0], intent)
		},
	}
}

func newPlayRotateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rotate <id> <cw|ccw>",
		Short: "Rotate the current piece",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var intent string
			switch args[1] {
			case "cw":
				intent = "rotate_cw"
			case "ccw":
				intent = "rotate_ccw"
			default:
				return fmt.Errorf("direction must be cw or ccw")
			}

			return sendInput(args[0], intent)
		},
	}
}

func newPlayDropCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "drop <id>",
		Short: "Hard drop the current piece",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return sendInput(args[0], "hard_drop")
		},
	}
}

func newPlayIntentCmd(use, short, intent string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return sendInput(args[0], intent)
		},
	}
}

func sendInput(id, intent string) error {
	req := map[string]string{"intent": intent}
	var result InputResult

	if err := client.Post(fmt.Sprintf("/api/v1/sessions/%s/input", id), req, &result); err != nil {
		return err
	}

	out := NewOutput(cfg.Output)
	out.Print(result)
	return nil
}
