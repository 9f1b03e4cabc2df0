package models

import "github.com/m04kA/keystone-front/internal/domain"

// NoticeView объявление с отрендеренным текстом
type NoticeView struct {
	domain.Notice
	ContentHTML string
}

// FaqView вопрос-ответ с отрендеренным ответом
type FaqView struct {
	domain.Faq
	AnswerHTML string
}

// Board объявления (новые сверху) и FAQ (по ID)
type Board struct {
	Notices []NoticeView
	Faqs    []FaqView
}
