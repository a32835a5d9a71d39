package domain

// ActionStatus is the progress state of an action item.
type ActionStatus string

const (
	ActionStatusNotStarted ActionStatus = "NOT_STARTED"
	ActionStatusInProgress ActionStatus = "IN_PROGRESS"
	ActionStatusDone       ActionStatus = "DONE"
	ActionStatusOnHold     ActionStatus = "ON_HOLD"
)

// ActionStatuses lists every status in display order.
var ActionStatuses = []ActionStatus{
	ActionStatusNotStarted,
	ActionStatusInProgress,
	ActionStatusDone,
	ActionStatusOnHold,
}

func (s ActionStatus) String() string { return string(s) }

// actionStatusLabels maps the Korean display labels that older hosted
// tables store in the status column.
var actionStatusLabels = map[string]ActionStatus{
	"진행전": ActionStatusNotStarted,
	"진행중": ActionStatusInProgress,
	"완료":  ActionStatusDone,
	"보류":  ActionStatusOnHold,
}

// ParseStoredActionStatus reads a status column value. Both the enum names
// and the Korean display labels are accepted; anything else is returned
// unchanged and fails IsValid.
func ParseStoredActionStatus(v string) ActionStatus {
	if s, ok := actionStatusLabels[v]; ok {
		return s
	}
	return ActionStatus(v)
}

func (s ActionStatus) IsValid() bool {
	switch s {
	case ActionStatusNotStarted, ActionStatusInProgress, ActionStatusDone, ActionStatusOnHold:
		return true
	}
	return false
}

// Emotion is the reader's dominant feeling after finishing a book.
type Emotion string

const (
	EmotionSad        Emotion = "sad"
	EmotionCalm       Emotion = "calm"
	EmotionThoughtful Emotion = "thoughtful"
	EmotionSurprised  Emotion = "surprised"
	EmotionHappy      Emotion = "happy"
	EmotionExcited    Emotion = "excited"
)

func (e Emotion) String() string { return string(e) }

func (e Emotion) IsValid() bool {
	switch e {
	case EmotionSad, EmotionCalm, EmotionThoughtful, EmotionSurprised, EmotionHappy, EmotionExcited:
		return true
	}
	return false
}
