package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/cipherswarm/cipherswarm/ent/attack"
	"github.com/cipherswarm/cipherswarm/ent/resource"
	"github.com/cipherswarm/cipherswarm/pkg/models"
	"github.com/cipherswarm/cipherswarm/pkg/services"
)

// intParam parses a positive integer path parameter or fails the
// request with 400.
func intParam(c *echo.Context, name string) (int, error) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil || v <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" must be a positive integer")
	}
	return v, nil
}

type createCampaignRequest struct {
	ProjectID   int             `json:"project_id"`
	HashListID  int             `json:"hash_list_id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Priority    models.Priority `json:"priority,omitempty"`
}

func (r createCampaignRequest) toService() services.CreateCampaignRequest {
	return services.CreateCampaignRequest{
		ProjectID:   r.ProjectID,
		HashListID:  r.HashListID,
		Name:        r.Name,
		Description: r.Description,
		Priority:    r.Priority,
	}
}

type updateCampaignRequest struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Priority    *models.Priority `json:"priority,omitempty"`
}

func (r updateCampaignRequest) toService() services.UpdateCampaignRequest {
	return services.UpdateCampaignRequest{
		Name:        r.Name,
		Description: r.Description,
		Priority:    r.Priority,
	}
}

type attackParamsRequest struct {
	Name                    string `json:"name,omitempty"`
	AttackMode              string `json:"attack_mode"`
	Mask                    string `json:"mask,omitempty"`
	IncrementMode           bool   `json:"increment_mode,omitempty"`
	IncrementMinimum        int    `json:"increment_minimum,omitempty"`
	IncrementMaximum        int    `json:"increment_maximum,omitempty"`
	Optimized               bool   `json:"optimized,omitempty"`
	SlowCandidateGenerators bool   `json:"slow_candidate_generators,omitempty"`
	WorkloadProfile         int    `json:"workload_profile,omitempty"`
	DisableMarkov           bool   `json:"disable_markov,omitempty"`
	ClassicMarkov           bool   `json:"classic_markov,omitempty"`
	MarkovThreshold         int    `json:"markov_threshold,omitempty"`
	LeftRule                string `json:"left_rule,omitempty"`
	RightRule               string `json:"right_rule,omitempty"`
	CustomCharset1          string `json:"custom_charset_1,omitempty"`
	CustomCharset2          string `json:"custom_charset_2,omitempty"`
	CustomCharset3          string `json:"custom_charset_3,omitempty"`
	CustomCharset4          string `json:"custom_charset_4,omitempty"`
	WordListID              *int   `json:"word_list_id,omitempty"`
	RuleListID              *int   `json:"rule_list_id,omitempty"`
	MaskListID              *int   `json:"mask_list_id,omitempty"`
}

func (r attackParamsRequest) toService() services.AttackParams {
	return services.AttackParams{
		Name:                    r.Name,
		AttackMode:              attack.AttackMode(r.AttackMode),
		Mask:                    r.Mask,
		IncrementMode:           r.IncrementMode,
		IncrementMinimum:        r.IncrementMinimum,
		IncrementMaximum:        r.IncrementMaximum,
		Optimized:               r.Optimized,
		SlowCandidateGenerators: r.SlowCandidateGenerators,
		WorkloadProfile:         r.WorkloadProfile,
		DisableMarkov:           r.DisableMarkov,
		ClassicMarkov:           r.ClassicMarkov,
		MarkovThreshold:         r.MarkovThreshold,
		LeftRule:                r.LeftRule,
		RightRule:               r.RightRule,
		CustomCharset1:          r.CustomCharset1,
		CustomCharset2:          r.CustomCharset2,
		CustomCharset3:          r.CustomCharset3,
		CustomCharset4:          r.CustomCharset4,
		WordListID:              r.WordListID,
		RuleListID:              r.RuleListID,
		MaskListID:              r.MaskListID,
	}
}

type moveAttackRequest struct {
	Direction string `json:"direction"`
}

type createResourceRequest struct {
	Name         string `json:"name"`
	FileName     string `json:"file_name"`
	ResourceType string `json:"resource_type"`
	LineCount    *int64 `json:"line_count,omitempty"`
	ByteSize     int64  `json:"byte_size,omitempty"`
	Checksum     string `json:"checksum,omitempty"`
	Sensitive    bool   `json:"sensitive,omitempty"`
	ProjectIDs   []int  `json:"project_ids,omitempty"`
}

func (r createResourceRequest) toService() services.CreateResourceRequest {
	return services.CreateResourceRequest{
		Name:         r.Name,
		FileName:     r.FileName,
		ResourceType: resource.ResourceType(r.ResourceType),
		LineCount:    r.LineCount,
		ByteSize:     r.ByteSize,
		Checksum:     r.Checksum,
		Sensitive:    r.Sensitive,
		ProjectIDs:   r.ProjectIDs,
	}
}

type lineCountRequest struct {
	LineCount int64 `json:"line_count"`
}

type addItemsRequest struct {
	Items []services.HashItemInput `json:"items"`
}

type heartbeatRequest struct {
	State string `json:"state,omitempty"`
}

type crackBatchRequest struct {
	Cracks []models.CrackSubmission `json:"cracks"`
}
