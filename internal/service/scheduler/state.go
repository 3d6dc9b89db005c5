package scheduler

import "fmt"

// State состояние сессии записи на демонстрацию
type State int

const (
	StateIdle       State = iota // пикер закрыт
	StateDateChosen              // выбрана дата, показаны слоты
	StateSlotChosen              // выбрано свободное время
	StateValidating              // повторная проверка перед подтверждением
	StateConfirming              // пользователь смотрит сводку
	StateSubmitting              // запись в хранилище и отправка письма
	StateSubmitted               // успех, терминальное состояние
	StateFailed                  // ошибка записи или отправки, черновик сохранен
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDateChosen:
		return "date_chosen"
	case StateSlotChosen:
		return "slot_chosen"
	case StateValidating:
		return "validating"
	case StateConfirming:
		return "confirming"
	case StateSubmitting:
		return "submitting"
	case StateSubmitted:
		return "submitted"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Event событие, переводящее сессию между состояниями
type Event int

const (
	EventPickDate Event = iota
	EventPickTime
	EventConfirmSlot
	EventCancelPicker
	EventSubmit
	EventRejected  // не прошла валидация или хранилище недоступно
	EventConflict  // слот занят
	EventValidated
	EventDecline
	EventConfirm
	EventCommitted
	EventFailed
	EventReopen
)

func (e Event) String() string {
	switch e {
	case EventPickDate:
		return "pick_date"
	case EventPickTime:
		return "pick_time"
	case EventConfirmSlot:
		return "confirm_slot"
	case EventCancelPicker:
		return "cancel_picker"
	case EventSubmit:
		return "submit"
	case EventRejected:
		return "rejected"
	case EventConflict:
		return "conflict"
	case EventValidated:
		return "validated"
	case EventDecline:
		return "decline"
	case EventConfirm:
		return "confirm"
	case EventCommitted:
		return "committed"
	case EventFailed:
		return "failed"
	case EventReopen:
		return "reopen"
	default:
		return fmt.Sprintf("event(%d)", int(e))
	}
}

type transitionKey struct {
	from  State
	event Event
}

// transitions таблица допустимых переходов. Все, чего нет в таблице, запрещено
var transitions = map[transitionKey]State{
	{StateIdle, EventPickDate}: StateDateChosen,
	{StateIdle, EventSubmit}:   StateValidating,

	{StateDateChosen, EventPickDate}:     StateDateChosen,
	{StateDateChosen, EventPickTime}:     StateSlotChosen,
	{StateDateChosen, EventCancelPicker}: StateIdle,

	{StateSlotChosen, EventPickDate}:     StateDateChosen,
	{StateSlotChosen, EventPickTime}:     StateSlotChosen,
	{StateSlotChosen, EventConfirmSlot}:  StateIdle,
	{StateSlotChosen, EventCancelPicker}: StateIdle,

	{StateValidating, EventRejected}:  StateIdle,
	{StateValidating, EventConflict}:  StateIdle,
	{StateValidating, EventValidated}: StateConfirming,

	{StateConfirming, EventDecline}: StateIdle,
	{StateConfirming, EventConfirm}: StateSubmitting,

	{StateSubmitting, EventCommitted}: StateSubmitted,
	{StateSubmitting, EventConflict}:  StateIdle,
	{StateSubmitting, EventFailed}:    StateFailed,

	{StateFailed, EventConfirm}: StateSubmitting,
	{StateFailed, EventReopen}:  StateIdle,
}

// Transition чистая функция переходов
func Transition(from State, event Event) (State, error) {
	to, ok := transitions[transitionKey{from: from, event: event}]
	if !ok {
		return from, fmt.Errorf("%w: %s on %s", ErrIllegalTransition, event, from)
	}
	return to, nil
}
