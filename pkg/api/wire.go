package api

import (
	"context"
	"fmt"

	"github.com/cipherswarm/cipherswarm/ent"
	"github.com/cipherswarm/cipherswarm/pkg/models"
	"github.com/cipherswarm/cipherswarm/pkg/services"
)

// taskResponse converts a task row to its wire form. Skip and limit
// are only set for real slices; a task covering the whole keyspace
// omits them so the agent runs hashcat without --skip/--limit.
func taskResponse(t *ent.Task) *models.TaskResponse {
	resp := &models.TaskResponse{
		ID:        int64(t.ID),
		AttackID:  int64(t.AttackID),
		StartDate: t.StartDate,
		Status:    string(t.State),
	}
	if t.KeyspaceLimit > 0 {
		skip, limit := t.KeyspaceOffset, t.KeyspaceLimit
		resp.Skip = &skip
		resp.Limit = &limit
	}
	return resp
}

// resourceFile points an agent at one resource download.
func (s *Server) resourceFile(res *ent.Resource) *models.AttackResourceFile {
	if res == nil {
		return nil
	}
	return &models.AttackResourceFile{
		ID:          int64(res.ID),
		DownloadURL: s.signer.SignedURL("/files/" + res.FileHandle),
		Checksum:    res.Checksum,
		FileName:    res.FileName,
	}
}

// attackResponse assembles the agent-facing attack DTO. The hash list
// body is rendered here so the checksum always matches what the signed
// hash_list_url would serve at this moment.
func (s *Server) attackResponse(ctx context.Context, b *services.AttackBundle) (*models.AttackResponse, error) {
	modeNumber, err := models.HashcatModeNumber(string(b.Attack.AttackMode))
	if err != nil {
		return nil, err
	}
	_, checksum, err := s.hashListService.RenderUncracked(ctx, b.HashList.ID)
	if err != nil {
		return nil, err
	}
	selfPath := fmt.Sprintf("/api/v1/client/attacks/%d", b.Attack.ID)
	return &models.AttackResponse{
		ID:                      int64(b.Attack.ID),
		AttackMode:              string(b.Attack.AttackMode),
		AttackModeHashcat:       modeNumber,
		Mask:                    b.Attack.Mask,
		IncrementMode:           b.Attack.IncrementMode,
		IncrementMinimum:        b.Attack.IncrementMinimum,
		IncrementMaximum:        b.Attack.IncrementMaximum,
		Optimized:               b.Attack.Optimized,
		SlowCandidateGenerators: b.Attack.SlowCandidateGenerators,
		WorkloadProfile:         b.Attack.WorkloadProfile,
		DisableMarkov:           b.Attack.DisableMarkov,
		ClassicMarkov:           b.Attack.ClassicMarkov,
		MarkovThreshold:         b.Attack.MarkovThreshold,
		LeftRule:                b.Attack.LeftRule,
		RightRule:               b.Attack.RightRule,
		CustomCharset1:          b.Attack.CustomCharset1,
		CustomCharset2:          b.Attack.CustomCharset2,
		CustomCharset3:          b.Attack.CustomCharset3,
		CustomCharset4:          b.Attack.CustomCharset4,
		HashListID:              int64(b.HashList.ID),
		HashMode:                b.HashList.HashTypeID,
		WordList:                s.resourceFile(b.WordList),
		RuleList:                s.resourceFile(b.RuleList),
		MaskList:                s.resourceFile(b.MaskList),
		HashListURL:             s.signer.SignedURL(selfPath + "/hash_list"),
		HashListChecksum:        checksum,
		URL:                     s.signer.AbsoluteURL(selfPath),
	}, nil
}

// resourceResponse is the operator view of a resource row.
func (s *Server) resourceResponse(res *ent.Resource) resourceResponse {
	return resourceResponse{
		ID:          res.ID,
		Name:        res.Name,
		FileName:    res.FileName,
		FileHandle:  res.FileHandle,
		Type:        string(res.ResourceType),
		LineCount:   res.LineCount,
		ByteSize:    res.ByteSize,
		Checksum:    res.Checksum,
		Sensitive:   res.Sensitive,
		DownloadURL: s.signer.SignedURL("/files/" + res.FileHandle),
	}
}
