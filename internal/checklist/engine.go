package checklist

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// UpstreamGenerator produces a dynamic checklist from the external backend.
type UpstreamGenerator interface {
	GenerateChecklist(ctx context.Context, complaintText string) (*Checklist, error)
}

// Engine prefers the upstream generator and falls back to the static rule
// table on any failure. Generate never returns an error: the caller always
// gets a usable checklist.
type Engine struct {
	upstream UpstreamGenerator
	logger   *zap.Logger
}

func NewEngine(upstream UpstreamGenerator, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{upstream: upstream, logger: logger}
}

func (e *Engine) Generate(ctx context.Context, complaintType, details string) Checklist {
	combined := strings.TrimSpace(complaintType)
	if d := strings.TrimSpace(details); d != "" {
		combined = combined + ": " + d
	}

	if e.upstream != nil {
		generated, err := e.upstream.GenerateChecklist(ctx, combined)
		if err == nil && generated != nil && len(generated.Mandatory) > 0 {
			return *generated
		}
		if err != nil {
			e.logger.Warn("checklist generator unreachable, using static checklist",
				zap.String("complaint_type", complaintType),
				zap.Error(err))
		}
	}

	return Static(complaintType)
}

// Static is the rule-based fallback checklist. The financial section is
// included only when the complaint type mentions financial loss or fraud.
func Static(complaintType string) Checklist {
	if strings.TrimSpace(complaintType) == "" {
		complaintType = "General Cyber Crime"
	}

	c := Checklist{
		Title: fmt.Sprintf("Checklist for %s", complaintType),
		Mandatory: []Item{
			PlainItem("Incident Date and Time"),
			PlainItem("Incident details (minimum 200 characters) without special characters (#$@^*`''~|!)"),
			StructuredItem(
				"Soft copy of national ID",
				"Voter ID, Driving License, Passport, PAN Card or Aadhar Card",
				".jpeg, .jpg, .png (max 5 MB)",
			),
			StructuredItem(
				"Evidence of the cyber crime",
				"All relevant evidence related to the incident (screenshots, emails, messages)",
				"max 10 MB each",
			),
		},
		Optional: []Item{
			PlainItem("Suspected website URLs/Social Media handles"),
			PlainItem("Suspect details (mobile, email, bank account, address)"),
			StructuredItem(
				"Photograph of suspect",
				"Any available photograph of the suspected person",
				".jpeg, .jpg, .png (max 5 MB)",
			),
		},
		Tips: []Item{
			PlainItem("Report the incident as soon as possible; delays weaken digital evidence"),
			PlainItem("Do not delete messages, emails or call records related to the incident"),
			PlainItem("Keep both digital copies and printouts of all evidence"),
		},
	}

	lower := strings.ToLower(complaintType)
	if strings.Contains(lower, "financial") || strings.Contains(lower, "fraud") {
		c.Financial = []Item{
			PlainItem("Name of Bank/Wallet/Merchant"),
			PlainItem("12-digit Transaction ID/UTR Number"),
			PlainItem("Date of transaction"),
			PlainItem("Fraud amount"),
		}
	}

	return c
}
