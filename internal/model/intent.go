package model

// Intent is a device-independent input command. Input mappers (the CLI,
// or any UI in front of the API) translate raw input into exactly these
// values; no raw key or touch data crosses into the engine.
type Intent string

const (
	IntentMoveLeft  Intent = "move_left"
	IntentMoveRight Intent = "move_right"
	IntentSoftDrop  Intent = "soft_drop"
	IntentRotateCW  Intent = "rotate_cw"
	IntentRotateCCW Intent = "rotate_ccw"
	IntentHardDrop  Intent = "hard_drop"
	IntentPause     Intent = "pause"
	IntentResume    Intent = "resume"
	IntentRestart   Intent = "restart"
)

// ParseIntent validates a raw intent string
func ParseIntent(s string) (Intent, error) {
	switch Intent(s) {
	case IntentMoveLeft, IntentMoveRight, IntentSoftDrop,
		IntentRotateCW, IntentRotateCCW, IntentHardDrop,
		IntentPause, IntentResume, IntentRestart:
		return Intent(s), nil
	default:
		return "", ErrInvalidIntent
	}
}
