package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/dns-sync/internal/domain/entity"
)

func TestExitCode(t *testing.T) {
	cases := []struct {
		status entity.RunStatus
		legacy bool
		want   int
	}{
		{entity.RunCompleted, false, exitCompleted},
		{entity.RunCompletedWithErrors, false, exitCompletedWithErrors},
		{entity.RunAborted, false, exitAborted},
		{entity.RunCompleted, true, 0},
		{entity.RunCompletedWithErrors, true, 0},
		{entity.RunAborted, true, 0},
	}
	for _, tc := range cases {
		res := &entity.RunResult{Status: tc.status}
		if tc.status == entity.RunAborted {
			res.Err = errors.New("sin conexión")
		}
		assert.Equal(t, tc.want, exitCode(res, tc.legacy), "status=%s legacy=%v", tc.status, tc.legacy)
	}
}
