package log

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestWithCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background(), "")
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.Equal(t, id, GetCorrelationID(ctx))

	ctx, id = WithCorrelationID(context.Background(), "abc-123")
	assert.Equal(t, "abc-123", id)
	assert.Equal(t, "abc-123", ForContext(ctx).Data["correlation_id"])
}

func TestForContext_WithoutID(t *testing.T) {
	assert.Empty(t, ForContext(context.Background()).Data)
}

func TestConfigure_InvalidLevel(t *testing.T) {
	previous := logrus.GetLevel()
	defer logrus.SetLevel(previous)

	Configure("barulhento")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())

	Configure("warn")
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())
}
