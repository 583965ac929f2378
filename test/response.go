package test

import (
	"testing"

	"glowup-diaries/internal/global/response"

	"github.com/stretchr/testify/require"
)

func ErrorEqual(t *testing.T, expected *response.Error, resp response.ResponseBody) {
	require.Equal(t, expected.Code, resp.Code)
	require.Equal(t, expected.Message, resp.Msg)
}

func NoError(t *testing.T, resp response.ResponseBody) {
	require.Equal(t, int32(200), resp.Code)
}
