package request

// InputRequest is the request body for sending an input intent to a
// session. Intent is one of: move_left, move_right, soft_drop, rotate_cw,
// rotate_ccw, hard_drop, pause, resume, restart.
type InputRequest struct {
	Intent string `json:"intent"`
}
