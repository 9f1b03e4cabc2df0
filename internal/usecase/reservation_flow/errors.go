package reservation_flow

import "errors"

var (
	// ErrThemeInactive возвращается при попытке забронировать неактивную тему
	ErrThemeInactive = errors.New("theme is not bookable")

	// ErrInvalidTransition операция недопустима в текущем состоянии
	ErrInvalidTransition = errors.New("reservation flow: invalid state transition")

	// ErrStaleResponse ответ пришел для даты, которая уже не выбрана
	ErrStaleResponse = errors.New("reservation flow: stale availability response")

	// ErrSlotNotFound слота нет в загруженном списке
	ErrSlotNotFound = errors.New("time slot not found")

	// ErrSlotReserved слот уже занят
	ErrSlotReserved = errors.New("time slot is already reserved")

	// ErrSubmitInProgress заявка уже отправляется
	ErrSubmitInProgress = errors.New("reservation flow: submit already in progress")

	// ErrSlotTaken бэкенд отказал: слот заняли между загрузкой и отправкой
	ErrSlotTaken = errors.New("time slot was taken by another reservation")

	// ErrCaptchaRejected бэкенд не принял токен анти-бот проверки
	ErrCaptchaRejected = errors.New("anti-automation check failed")

	// ErrRejected бэкенд отклонил заявку
	ErrRejected = errors.New("reservation rejected by backend")

	// ErrUnavailable бэкенд недоступен, можно повторить
	ErrUnavailable = errors.New("reservation flow: backend unavailable")
)
