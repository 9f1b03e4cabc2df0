package validation

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBoundedScript(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{name: "three syllables", in: "홍길동", want: true},
		{name: "exactly seven", in: "가나다라마바사", want: true},
		{name: "bank name", in: "국민은행", want: true},
		{name: "eight syllables", in: "가나다라마바사아", want: false},
		{name: "empty", in: "", want: false},
		{name: "latin", in: "Hong", want: false},
		{name: "mixed", in: "홍gil동", want: false},
		{name: "space", in: "홍 길동", want: false},
		{name: "digit", in: "홍길동1", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsBoundedScript(tt.in, 7))
		})
	}
}

func TestIsDigitsOnly(t *testing.T) {
	assert.True(t, IsDigitsOnly("01012345678", 15))
	assert.True(t, IsDigitsOnly(strings.Repeat("9", 15), 15))
	assert.False(t, IsDigitsOnly(strings.Repeat("9", 16), 15))
	assert.False(t, IsDigitsOnly("010-1234-5678", 15))
	assert.False(t, IsDigitsOnly("０１０", 15)) // full-width digits
	assert.False(t, IsDigitsOnly("", 15))
	assert.False(t, IsDigitsOnly("12a", 15))
	assert.True(t, IsDigitsOnly("110123456789", 20))
}

func TestInRange(t *testing.T) {
	assert.True(t, InRange(2, 2, 7))
	assert.True(t, InRange(7, 2, 7))
	assert.False(t, InRange(1, 2, 7))
	assert.False(t, InRange(8, 2, 7))
}

func TestError_Wrapping(t *testing.T) {
	err := fmt.Errorf("submit: %w", NewError("name", "이름은 한글 7자 이내로 입력해주세요."))

	assert.ErrorIs(t, err, ErrInvalidField)

	msg, ok := UserMessage(err)
	assert.True(t, ok)
	assert.Equal(t, "이름은 한글 7자 이내로 입력해주세요.", msg)

	_, ok = UserMessage(errors.New("boom"))
	assert.False(t, ok)
}
