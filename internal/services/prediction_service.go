package services

import (
	"context"
	"math"
	"net/http"
	"strings"

	"github.com/V8FS1/Automated-Disease-Diagnosis-from-Symptom-Descriptions/internal/domain"
	"github.com/V8FS1/Automated-Disease-Diagnosis-from-Symptom-Descriptions/internal/repository/conversation"
	"github.com/V8FS1/Automated-Disease-Diagnosis-from-Symptom-Descriptions/internal/repository/message"
	"github.com/V8FS1/Automated-Disease-Diagnosis-from-Symptom-Descriptions/internal/services/catalog"
	"github.com/V8FS1/Automated-Disease-Diagnosis-from-Symptom-Descriptions/internal/services/classifier"
	"github.com/V8FS1/Automated-Disease-Diagnosis-from-Symptom-Descriptions/internal/services/prediction"
)

// PredictionService orchestrates the symptom-matching pipeline: classifier
// attempt, heuristic fallback, conversation reconciliation and message
// recording, normalized into one response envelope.
type PredictionService struct {
	catalog    *catalog.Service
	classifier classifier.Classifier
	reconciler *prediction.Reconciler
	recorder   *prediction.Recorder
	matcher    *prediction.HeuristicMatcher
	logger     Logger
}

func NewPredictionService(
	catalogService *catalog.Service,
	clf classifier.Classifier,
	convRepo conversation.ConversationRepository,
	messageRepo message.MessageRepository,
	logger Logger,
) (*PredictionService, error) {
	if catalogService == nil {
		return nil, prediction.NewValidationError("constructor", "catalog service is required")
	}
	if clf == nil {
		return nil, prediction.NewValidationError("constructor", "classifier is required")
	}
	if convRepo == nil {
		return nil, prediction.NewValidationError("constructor", "conversation repository is required")
	}
	if messageRepo == nil {
		return nil, prediction.NewValidationError("constructor", "message repository is required")
	}
	if logger == nil {
		logger = &NoOpLogger{}
	}

	return &PredictionService{
		catalog:    catalogService,
		classifier: clf,
		reconciler: prediction.NewReconciler(convRepo, logger),
		recorder:   prediction.NewRecorder(messageRepo, logger),
		matcher:    prediction.NewHeuristicMatcher(logger),
		logger:     logger,
	}, nil
}

// Predict runs one symptom description through the full pipeline.
//
// userID 0 means anonymous (no persistence); convID 0 means no conversation
// identifier was supplied. The returned envelope is always well-formed: the
// client never sees a raw failure.
func (s *PredictionService) Predict(ctx context.Context, userID, convID uint, text string) *prediction.Envelope {
	if text == "" {
		return prediction.ErrorEnvelope(prediction.NoSymptomsMessage, http.StatusBadRequest)
	}

	records, err := s.catalog.Catalog()
	if err != nil {
		// No catalog means no match is possible for this request.
		s.logger.Error("disease catalog unavailable", "error", err)
		return prediction.ErrorEnvelope(prediction.GenericErrorMessage, http.StatusInternalServerError)
	}

	conv, isNew := s.reconciler.Resolve(ctx, userID, convID, text)

	envelope := s.classifyOrFallback(ctx, text, records, conv, isNew)

	if envelope.Status == prediction.StatusSuccess || envelope.Status == prediction.StatusNotFound {
		s.recorder.Record(ctx, conv, text, envelope)
	}

	return envelope
}

// classifyOrFallback tries the classifier once and reroutes to the keyword
// matcher on any failure. There is no retry: a single classifier failure
// means the heuristic path for the rest of this request.
func (s *PredictionService) classifyOrFallback(
	ctx context.Context,
	text string,
	records []domain.DiseaseRecord,
	conv *domain.Conversation,
	isNew bool,
) *prediction.Envelope {
	predictions, err := s.classifier.Classify(ctx, text)
	if err != nil {
		if classifier.IsModelUnavailable(err) {
			s.logger.Warn("classifier model unavailable, using keyword fallback")
		} else {
			s.logger.Warn("classifier failed, using keyword fallback", "error", err)
		}
		return s.heuristicEnvelope(text, records, conv, isNew)
	}

	matched := matchPredictions(predictions, records)
	if len(matched) == 0 {
		return prediction.NotFoundEnvelope(conv, isNew)
	}
	return prediction.SuccessEnvelope(&prediction.Data{Predictions: matched}, conv, isNew)
}

func (s *PredictionService) heuristicEnvelope(
	text string,
	records []domain.DiseaseRecord,
	conv *domain.Conversation,
	isNew bool,
) *prediction.Envelope {
	matched := s.matcher.Match(text, records)
	if len(matched) == 0 {
		return prediction.NotFoundEnvelope(conv, isNew)
	}
	// First match wins on the heuristic path; the endpoint reports a single
	// disease rather than a ranked list.
	return prediction.SuccessEnvelope(&prediction.Data{Disease: &matched[0]}, conv, isNew)
}

// matchPredictions joins classifier labels with catalog records by
// case-insensitive name equality. Labels with no catalog entry are dropped;
// scores become percentages rounded to two decimals.
func matchPredictions(predictions []classifier.Prediction, records []domain.DiseaseRecord) []prediction.MatchResult {
	var matched []prediction.MatchResult
	for _, p := range predictions {
		for i := range records {
			if strings.EqualFold(records[i].Name, p.Label) {
				matched = append(matched, prediction.MatchResult{
					DiseaseRecord: records[i],
					Confidence:    math.Round(p.Score*10000) / 100,
				})
				break
			}
		}
	}
	return matched
}
