package content

import (
	"strings"
	"time"

	"github.com/m04kA/keystone-front/internal/domain"
	"github.com/m04kA/keystone-front/internal/validation"
)

const (
	MsgTitleRequired    = "제목을 입력해주세요."
	MsgContentRequired  = "내용을 입력해주세요."
	MsgInvalidType      = "공지 유형이 올바르지 않습니다."
	MsgInvalidDate      = "날짜 형식이 올바르지 않습니다."
	MsgQuestionRequired = "질문을 입력해주세요."
	MsgAnswerRequired   = "답변을 입력해주세요."
)

func validateNotice(n domain.Notice) error {
	if strings.TrimSpace(n.Title) == "" {
		return validation.NewError("title", MsgTitleRequired)
	}
	if strings.TrimSpace(n.Content) == "" {
		return validation.NewError("content", MsgContentRequired)
	}
	if !n.Type.IsValid() {
		return validation.NewError("noticeType", MsgInvalidType)
	}
	if _, err := time.Parse(domain.DateFormat, n.Date); err != nil {
		return validation.NewError("noticeDate", MsgInvalidDate)
	}
	return nil
}

func validateFaq(f domain.Faq) error {
	if strings.TrimSpace(f.Question) == "" {
		return validation.NewError("question", MsgQuestionRequired)
	}
	if strings.TrimSpace(f.Answer) == "" {
		return validation.NewError("answer", MsgAnswerRequired)
	}
	return nil
}
