package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"album-service/apperrors"
	"album-service/middleware"
	"album-service/store"

	"github.com/sirupsen/logrus"
)

type PackagesController struct {
	catalog  *store.PackageCatalog
	accounts store.AccountStore
	log      *logrus.Entry
}

func NewPackagesController(catalog *store.PackageCatalog, accounts store.AccountStore, log *logrus.Entry) *PackagesController {
	return &PackagesController{catalog: catalog, accounts: accounts, log: log}
}

// ListPackages returns the purchasable tiers.
func (c *PackagesController) ListPackages() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		packages, err := c.catalog.List()
		if err != nil {
			c.log.WithError(err).Error("failed to list packages")
			messageJSON(rw, http.StatusInternalServerError, "Error fetching packages")
			return
		}
		writeJSON(rw, http.StatusOK, packages)
	}
}

type applyPackageBody struct {
	PackageID uint `json:"packageId"`
}

// ApplyPackage assigns a tier to the calling admin: sets the expiry from
// the tier's storage duration and resets the usage counters.
func (c *PackagesController) ApplyPackage() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ctx, cancel := requestContext(r)
		defer cancel()

		principal, _ := middleware.PrincipalFrom(r.Context())

		body := applyPackageBody{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.PackageID == 0 {
			messageJSON(rw, http.StatusBadRequest, "packageId is required")
			return
		}

		pkg, err := c.catalog.FindByID(body.PackageID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				messageJSON(rw, http.StatusNotFound, "Package not found")
				return
			}
			c.log.WithError(err).Error("failed to load package")
			messageJSON(rw, http.StatusInternalServerError, "Error applying package")
			return
		}

		expiresAt := time.Now().AddDate(0, pkg.StorageDurationMonths, 0)
		if err := c.accounts.ApplyPackage(ctx, principal.AccountID, pkg.ID, expiresAt); err != nil {
			c.log.WithError(err).Error("failed to apply package")
			messageJSON(rw, http.StatusInternalServerError, "Error applying package")
			return
		}

		writeJSON(rw, http.StatusOK, map[string]interface{}{
			"message":           "Package applied successfully",
			"packageExpiryDate": expiresAt,
		})
	}
}
