package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/kidneycare/backend/internal/domain"
	"github.com/kidneycare/backend/pkg/utils"
)

// Predictor scores encoded feature vectors; *Invoker satisfies it
type Predictor interface {
	Predict(vector []float64) (domain.Prediction, error)
}

// AssessmentService turns raw patient input into a presented prediction
type AssessmentService struct {
	predictor Predictor
	logger    *zap.Logger
}

// NewAssessmentService creates a new assessment service
func NewAssessmentService(predictor Predictor, logger *zap.Logger) *AssessmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssessmentService{
		predictor: predictor,
		logger:    logger,
	}
}

// Assess validates the input, encodes it and runs the classifier
func (s *AssessmentService) Assess(ctx context.Context, in domain.PatientInput) (domain.Assessment, error) {
	if err := ctx.Err(); err != nil {
		return domain.Assessment{}, err
	}
	if err := in.Validate(); err != nil {
		return domain.Assessment{}, err
	}

	vector := EncodeFeatures(in)

	prediction, err := s.predictor.Predict(vector[:])
	if err != nil {
		var ierr *domain.InferenceError
		if errors.As(err, &ierr) {
			s.logger.Warn("inference rejected feature vector", zap.String("reason", ierr.Reason))
		}
		return domain.Assessment{}, err
	}

	s.logger.Debug("prediction computed", zap.Int("label", prediction.Label))

	return domain.Assessment{
		Label:              prediction.Label,
		Result:             domain.ResultText(prediction.Label),
		Probability:        prediction.Probability,
		ProbabilityPercent: utils.RoundTo(utils.Clamp(prediction.Probability, 0, 1)*100, 2),
		Disclaimer:         domain.Disclaimer,
	}, nil
}
