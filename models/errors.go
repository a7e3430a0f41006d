package models

import (
	"errors"
)

var (
	ErrNoOptions               = errors.New("no initialized model options")
	ErrNegativeIterations      = errors.New("negative iterations")
	ErrNonPositiveLearningRate = errors.New("learning rate must be positive")
	ErrNegativeTolerance       = errors.New("negative tolerance")
)
