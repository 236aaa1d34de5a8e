package domain

import (
	"errors"
)

// DeleteSiteConfirmation must be typed back verbatim before a site and all of
// its menu entries are dropped.
const DeleteSiteConfirmation = "DELETE PERMANENTLY"

var (
	MessageSuccessGetSites   = "success get sites"
	MessageSuccessCreateSite = "site created successfully"
	MessageSuccessUpdateSite = "site updated successfully"
	MessageSuccessDeleteSite = "site deleted successfully"

	MessageFailedGetSites   = "failed to get sites"
	MessageFailedCreateSite = "failed to create site"
	MessageFailedUpdateSite = "failed to update site"
	MessageFailedDeleteSite = "failed to delete site"

	ErrSiteNotFound           = errors.New("site not found")
	ErrDeleteConfirmationText = errors.New("invalid confirmation, type DELETE PERMANENTLY to delete the site")
)

type (
	SiteCreateRequest struct {
		Name     string `json:"name" validate:"required"`
		Code     string `json:"code" validate:"required"`
		IsActive *bool  `json:"is_active,omitempty"`
	}

	SiteUpdateRequest struct {
		Name     *string `json:"name,omitempty"`
		Code     *string `json:"code,omitempty"`
		IsActive *bool   `json:"is_active,omitempty"`
	}

	SiteDeleteRequest struct {
		ConfirmText string `json:"confirm_text"`
	}
)
