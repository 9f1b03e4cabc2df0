package get_notices

import "github.com/m04kA/keystone-front/internal/service/content/models"

// BoardResponse HTTP response model
type BoardResponse struct {
	Notices []NoticeResponse `json:"notices"`
	Faqs    []FaqResponse    `json:"faqs"`
}

type NoticeResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	ContentHTML string `json:"contentHtml"`
	Type        string `json:"noticeType"`
	Date        string `json:"noticeDate"`
}

type FaqResponse struct {
	ID         int64  `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	AnswerHTML string `json:"answerHtml"`
}

func FromServiceBoard(b *models.Board) *BoardResponse {
	resp := &BoardResponse{
		Notices: make([]NoticeResponse, len(b.Notices)),
		Faqs:    make([]FaqResponse, len(b.Faqs)),
	}
	for i, n := range b.Notices {
		resp.Notices[i] = NoticeResponse{
			ID:          n.ID,
			Title:       n.Title,
			Content:     n.Content,
			ContentHTML: n.ContentHTML,
			Type:        string(n.Type),
			Date:        n.Date,
		}
	}
	for i, f := range b.Faqs {
		resp.Faqs[i] = FaqResponse{
			ID:         f.ID,
			Question:   f.Question,
			Answer:     f.Answer,
			AnswerHTML: f.AnswerHTML,
		}
	}
	return resp
}
