package game

import "errors"

// Validation failures are local and recoverable by the caller; none are
// process-fatal. The validator returns the first applicable error and
// performs no partial mutation.
var (
	ErrNotYourTurn                      = errors.New("not your turn")
	ErrInvalidPosition                  = errors.New("position out of bounds")
	ErrInvalidLevel                     = errors.New("stack level out of range")
	ErrPieceNotFound                    = errors.New("piece not found")
	ErrPieceAlreadyCaptured             = errors.New("piece already captured")
	ErrNotYourPiece                     = errors.New("piece belongs to the other player")
	ErrPositionMismatch                 = errors.New("move origin does not match piece position")
	ErrNoSelfMove                       = errors.New("move must change position")
	ErrFortressCannotMove               = errors.New("fortress cannot move")
	ErrCannotCaptureOwnPiece            = errors.New("cannot capture own piece")
	ErrMustBeCaptureMove                = errors.New("occupied destination requires a capture move")
	ErrCaptureTargetMismatch            = errors.New("capture target does not match destination occupant")
	ErrStackTooHigh                     = errors.New("stack already at maximum height")
	ErrCannotPlaceInMiddleWithoutBottom = errors.New("cannot place in middle without a bottom piece")
	ErrCanOnlyRemoveFromTop             = errors.New("only the top of a stack may be removed")
	ErrNoLegalMoves                     = errors.New("no legal moves")
)

// Per-piece movement rejections, one sentinel per movable type so a caller
// can report the exact rule that failed.
var (
	ErrInvalidMarshalMove    = errors.New("invalid marshal move")
	ErrInvalidGeneralMove    = errors.New("invalid general move")
	ErrInvalidLieutenantMove = errors.New("invalid lieutenant move")
	ErrInvalidMajorMove      = errors.New("invalid major move")
	ErrInvalidMinorMove      = errors.New("invalid minor move")
	ErrInvalidShinobiMove    = errors.New("invalid shinobi move")
	ErrInvalidBowMove        = errors.New("invalid bow move")
	ErrInvalidLanceMove      = errors.New("invalid lance move")
	ErrInvalidCatapultMove   = errors.New("invalid catapult move")
	ErrInvalidSpyMove        = errors.New("invalid spy move")
	ErrInvalidSamuraiMove    = errors.New("invalid samurai move")
	ErrInvalidCaptainMove    = errors.New("invalid captain move")
)
