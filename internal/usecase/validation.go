package usecase

import (
	"fmt"
	"strings"

	domainErrors "github.com/zestcart/zestcart/internal/domain/errors"
	"github.com/zestcart/zestcart/internal/domain/model"
)

// ValidateDraft checks the closed line-item shape and required contact
// fields of a submission before anything is persisted.
func ValidateDraft(draft model.OrderDraft) error {
	if strings.TrimSpace(draft.Name) == "" {
		return fmt.Errorf("%w: name is required", domainErrors.ErrValidation)
	}
	if strings.TrimSpace(draft.Mobile) == "" {
		return fmt.Errorf("%w: mobile is required", domainErrors.ErrValidation)
	}
	if !draft.TotalAmount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", domainErrors.ErrValidation)
	}
	if len(draft.Products) == 0 {
		return fmt.Errorf("%w: at least one product is required", domainErrors.ErrValidation)
	}
	for i, item := range draft.Products {
		if strings.TrimSpace(item.Name) == "" {
			return fmt.Errorf("%w: product %d: name is required", domainErrors.ErrValidation, i)
		}
		if item.Price.IsNegative() {
			return fmt.Errorf("%w: product %d: price must not be negative", domainErrors.ErrValidation, i)
		}
		if item.Quantity < 1 {
			return fmt.Errorf("%w: product %d: quantity must be at least 1", domainErrors.ErrValidation, i)
		}
	}
	return nil
}
