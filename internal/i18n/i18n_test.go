package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tianji-app/fortune-api/internal/domain"
	"github.com/tianji-app/fortune-api/internal/i18n"
)

func TestMessage_PerLanguage(t *testing.T) {
	tr, err := i18n.New(domain.LangChinese)
	require.NoError(t, err)

	assert.Equal(t, "The stars are clouded right now. Please try again in a moment.",
		tr.Message(domain.LangEnglish, i18n.MsgOracleUnavailable))
	assert.Equal(t, "天機暫時蒙蔽，請稍後再試。",
		tr.Message(domain.LangChinese, i18n.MsgOracleUnavailable))
	assert.NotEmpty(t, tr.Message(domain.LangSpanish, i18n.MsgInvalidRequest))
	assert.NotEmpty(t, tr.Message(domain.LangRussian, i18n.MsgInternal))
	assert.NotEmpty(t, tr.Message(domain.LangFrench, i18n.MsgOracleUnavailable))
}

func TestMessage_UnknownIDFallsBackToID(t *testing.T) {
	tr, err := i18n.New(domain.LangChinese)
	require.NoError(t, err)

	assert.Equal(t, "no_such_message", tr.Message(domain.LangEnglish, "no_such_message"))
}
