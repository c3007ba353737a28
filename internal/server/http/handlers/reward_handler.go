package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/loyaltyworks/rewards/internal/domain/model"
	"github.com/loyaltyworks/rewards/internal/server/http/dto"
)

// RewardHandler manages reward catalog endpoints.
type RewardHandler struct {
	facade CatalogFacade
}

// NewRewardHandler constructs RewardHandler.
func NewRewardHandler(facade CatalogFacade) *RewardHandler {
	return &RewardHandler{facade: facade}
}

// Get handles GET /api/rewards/:rewardId.
func (h *RewardHandler) Get(c *gin.Context) {
	rewardID := c.Param("rewardId")
	reward, err := h.facade.GetReward(c.Request.Context(), rewardID)
	if err != nil {
		writeError(c, err, "Reward not found: "+rewardID)
		return
	}
	c.XML(http.StatusOK, rewardDocument(reward))
}

// List handles GET /api/rewards.
func (h *RewardHandler) List(c *gin.Context) {
	rewards, err := h.facade.ListRewards(c.Request.Context())
	if err != nil {
		writeError(c, err, "")
		return
	}
	doc := dto.RewardListDocument{Rewards: make([]dto.RewardDocument, 0, len(rewards))}
	for i := range rewards {
		doc.Rewards = append(doc.Rewards, rewardDocument(&rewards[i]))
	}
	c.XML(http.StatusOK, doc)
}

// Save handles POST /api/rewards (insert or replace by rewardId).
func (h *RewardHandler) Save(c *gin.Context) {
	if !requireXML(c) {
		return
	}
	var req dto.SaveRewardRequest
	if err := c.ShouldBindXML(&req); err != nil {
		c.XML(http.StatusBadRequest, dto.ErrorDocument{Message: "Malformed reward document"})
		return
	}
	if req.RewardID == "" {
		c.XML(http.StatusBadRequest, dto.ErrorDocument{Message: "Missing required field: rewardId"})
		return
	}

	reward := &model.Reward{
		RewardID:          req.RewardID,
		RewardName:        req.RewardName,
		PointsRequired:    req.PointsRequired,
		RewardType:        req.RewardType,
		RewardValue:       req.RewardValue,
		AvailabilityCount: model.DefaultAvailabilityCount,
		ExpirationDate:    req.ExpirationDate,
		Category:          req.Category,
		Description:       req.Description,
		IsActive:          true,
	}
	if req.AvailabilityCount != nil {
		reward.AvailabilityCount = *req.AvailabilityCount
	}
	if req.IsActive != nil {
		reward.IsActive = *req.IsActive
	}

	if err := h.facade.SaveReward(c.Request.Context(), reward); err != nil {
		writeError(c, err, "")
		return
	}
	c.XML(http.StatusOK, rewardDocument(reward))
}

func rewardDocument(reward *model.Reward) dto.RewardDocument {
	return dto.RewardDocument{
		RewardID:          reward.RewardID,
		RewardName:        reward.RewardName,
		PointsRequired:    reward.PointsRequired,
		RewardType:        reward.RewardType,
		RewardValue:       reward.RewardValue,
		AvailabilityCount: reward.AvailabilityCount,
		ExpirationDate:    reward.ExpirationDate,
		Category:          reward.Category,
		Description:       reward.Description,
		IsActive:          reward.IsActive,
	}
}
