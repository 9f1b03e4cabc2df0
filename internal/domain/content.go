package domain

// NoticeType тип объявления
type NoticeType string

const (
	NoticeEvent       NoticeType = "event"
	NoticeMaintenance NoticeType = "maintenance"
	NoticeNewTheme    NoticeType = "new_theme"
)

func (t NoticeType) IsValid() bool {
	switch t {
	case NoticeEvent, NoticeMaintenance, NoticeNewTheme:
		return true
	default:
		return false
	}
}

// Notice объявление
type Notice struct {
	ID      int64
	Title   string
	Content string
	Type    NoticeType
	Date    string // YYYY-MM-DD
}

// Faq вопрос-ответ
type Faq struct {
	ID       int64
	Question string
	Answer   string
}

// NoticeBoard объявления и FAQ одной выдачей
type NoticeBoard struct {
	Notices []Notice
	Faqs    []Faq
}

// Location точка на карте
type Location struct {
	ID        int64
	Name      string
	Address   string
	Latitude  float64
	Longitude float64
}
