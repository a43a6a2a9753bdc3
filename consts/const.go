package consts

type StateID int

const (
	_ StateID = iota
	StateWelcome
	StatePlaying
	StateScoreboard
	StateDone
)

const (
	MinPlayers      = 2
	MaxPlayers      = 10
	InitialHandSize = 7
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsInputClosed        = NewErr(1, true, "Input closed. ")
	ErrorsPlayerCountInvalid = NewErr(1, false, "Player count invalid. ")
	ErrorsTargetScoreInvalid = NewErr(1, false, "Target score invalid. ")
)
