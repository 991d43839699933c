package ai

import (
	"context"
	"errors"
	"strings"
	"time"

	"google.golang.org/api/googleapi"
	"google.golang.org/genai"
)

// Class is the normalized fault category of a provider error.
type Class string

// Provider error classes.
const (
	// ClassQuota is a 429-class rejection: the provider metered us out.
	// Non-terminal; jobs defer without consuming an attempt.
	ClassQuota Class = "quota"

	// ClassOverload is a 503-class rejection: the model is saturated.
	ClassOverload Class = "overload"

	// ClassValidation is a 400/404-class rejection: the request itself
	// is wrong and retrying cannot help.
	ClassValidation Class = "validation"

	// ClassTransient covers network faults and retryable 5xx responses.
	ClassTransient Class = "transient"

	// ClassFatal covers auth failures and contract violations.
	ClassFatal Class = "fatal"
)

// QuotaKind is the quota dimension a 429 response names.
type QuotaKind string

// Quota dimensions.
const (
	QuotaRPM     QuotaKind = "rpm"
	QuotaTPM     QuotaKind = "tpm"
	QuotaRPD     QuotaKind = "rpd"
	QuotaUnknown QuotaKind = "unknown"
)

// Classification is the tagged result of ClassifyError. QuotaKind,
// RetryDelaySec and QuotaIDs are meaningful only when Class is ClassQuota.
type Classification struct {
	Class         Class
	QuotaKind     QuotaKind
	RetryDelaySec int
	QuotaIDs      []string
	Message       string
}

// quotaKeywords is the documented fallback set for providers that return
// a quota rejection without structured details.
var quotaKeywords = []string{"quota", "rate limit", "resource exhausted", "resource_exhausted"}

// overloadKeywords is the documented fallback set for overload responses
// without a usable status code.
var overloadKeywords = []string{"overloaded", "unavailable", "try again later"}

// ClassifyError normalizes a provider error into a tagged Classification.
// Structured fields (status code, google.rpc detail payloads) are
// preferred; the keyword fallback only runs when no typed error is found.
func ClassifyError(err error) Classification {
	if err == nil {
		return Classification{}
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return Classification{Class: ClassTransient, Message: err.Error()}
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return classifyCode(apiErr.Code, apiErr.Message, detailsFromMaps(apiErr.Details))
	}

	var gErr *googleapi.Error
	if errors.As(err, &gErr) {
		return classifyCode(gErr.Code, gErr.Message, detailsFromAny(gErr.Details))
	}

	msg := strings.ToLower(err.Error())
	for _, kw := range quotaKeywords {
		if strings.Contains(msg, kw) {
			return Classification{Class: ClassQuota, QuotaKind: QuotaUnknown, Message: err.Error()}
		}
	}
	for _, kw := range overloadKeywords {
		if strings.Contains(msg, kw) {
			return Classification{Class: ClassOverload, Message: err.Error()}
		}
	}

	return Classification{Class: ClassTransient, Message: err.Error()}
}

// classifyCode maps an HTTP status code plus optional google.rpc details
// to a Classification.
func classifyCode(code int, message string, details errDetails) Classification {
	switch {
	case code == 429:
		kind := QuotaUnknown
		if k := kindFromQuotaIDs(details.quotaIDs); k != "" {
			kind = k
		}
		return Classification{
			Class:         ClassQuota,
			QuotaKind:     kind,
			RetryDelaySec: details.retryDelaySec,
			QuotaIDs:      details.quotaIDs,
			Message:       message,
		}
	case code == 503:
		return Classification{Class: ClassOverload, Message: message}
	case code == 400 || code == 404:
		return Classification{Class: ClassValidation, Message: message}
	case code == 401 || code == 403:
		return Classification{Class: ClassFatal, Message: message}
	default:
		return Classification{Class: ClassTransient, Message: message}
	}
}

// kindFromQuotaIDs derives the quota dimension from provider quota ids
// such as "GenerateRequestsPerMinutePerProjectPerModel" or
// "...PerDayPerProject...". Token-denominated per-minute quotas map to TPM.
func kindFromQuotaIDs(ids []string) QuotaKind {
	for _, id := range ids {
		switch {
		case strings.Contains(id, "PerDay"):
			return QuotaRPD
		case strings.Contains(id, "PerMinute") && strings.Contains(id, "Token"):
			return QuotaTPM
		case strings.Contains(id, "PerMinute"):
			return QuotaRPM
		}
	}
	return ""
}

// errDetails holds the fields extracted from google.rpc detail payloads.
type errDetails struct {
	quotaIDs      []string
	retryDelaySec int
}

const (
	detailTypeQuotaFailure = "type.googleapis.com/google.rpc.QuotaFailure"
	detailTypeRetryInfo    = "type.googleapis.com/google.rpc.RetryInfo"
)

func detailsFromMaps(details []map[string]any) errDetails {
	var out errDetails
	for _, d := range details {
		mergeDetail(&out, d)
	}
	return out
}

func detailsFromAny(details []interface{}) errDetails {
	var out errDetails
	for _, d := range details {
		if m, ok := d.(map[string]any); ok {
			mergeDetail(&out, m)
		}
	}
	return out
}

func mergeDetail(out *errDetails, d map[string]any) {
	switch d["@type"] {
	case detailTypeQuotaFailure:
		violations, _ := d["violations"].([]any)
		for _, v := range violations {
			vm, ok := v.(map[string]any)
			if !ok {
				continue
			}
			if id, ok := vm["quotaId"].(string); ok && id != "" {
				out.quotaIDs = append(out.quotaIDs, id)
			} else if metric, ok := vm["quotaMetric"].(string); ok && metric != "" {
				out.quotaIDs = append(out.quotaIDs, metric)
			}
		}
	case detailTypeRetryInfo:
		delay, _ := d["retryDelay"].(string)
		if delay == "" {
			return
		}
		if dur, err := time.ParseDuration(delay); err == nil && dur > 0 {
			out.retryDelaySec = int(dur.Round(time.Second) / time.Second)
		}
	}
}
