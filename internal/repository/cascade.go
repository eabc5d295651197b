package repository

import (
	"fmt"

	"github.com/dangerclosesec/trainhub/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// The helpers below remove an entity together with everything that
// references it. Each must run inside a transaction and deletes dependents
// before owners: foreign keys are RESTRICT and nothing cascades in the
// database.

// deleteTrainingsTx removes feedback, then applications, then the trainings.
// The owning organizations' ratings are recomputed without the removed
// feedback.
func deleteTrainingsTx(tx *gorm.DB, trainingIDs []uuid.UUID) (int64, error) {
	if len(trainingIDs) == 0 {
		return 0, nil
	}
	var orgIDs []uuid.UUID
	if err := tx.Model(&model.Training{}).Where("id IN ?", trainingIDs).Distinct().Pluck("organization_id", &orgIDs).Error; err != nil {
		return 0, fmt.Errorf("finding training owners: %w", err)
	}
	if err := tx.Where("training_id IN ?", trainingIDs).Delete(&model.TrainingFeedback{}).Error; err != nil {
		return 0, fmt.Errorf("deleting training feedback: %w", err)
	}
	if err := refreshRatingsTx(tx, orgIDs...); err != nil {
		return 0, err
	}
	if err := tx.Where("training_id IN ?", trainingIDs).Delete(&model.TrainingApplication{}).Error; err != nil {
		return 0, fmt.Errorf("deleting training applications: %w", err)
	}
	res := tx.Where("id IN ?", trainingIDs).Delete(&model.Training{})
	if res.Error != nil {
		return 0, fmt.Errorf("deleting trainings: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// deleteOrganizationsTx removes, in order, the organizations' feedback,
// their trainings (with the trainings' own dependents), the organization
// profiles and finally the owning users.
func deleteOrganizationsTx(tx *gorm.DB, orgIDs []uuid.UUID) (int64, error) {
	if len(orgIDs) == 0 {
		return 0, nil
	}

	var userIDs []uuid.UUID
	if err := tx.Model(&model.OrganizationProfile{}).Where("id IN ?", orgIDs).Pluck("user_id", &userIDs).Error; err != nil {
		return 0, fmt.Errorf("finding organization owners: %w", err)
	}

	if err := tx.Where("organization_id IN ?", orgIDs).Delete(&model.TrainingFeedback{}).Error; err != nil {
		return 0, fmt.Errorf("deleting organization feedback: %w", err)
	}

	var trainingIDs []uuid.UUID
	if err := tx.Model(&model.Training{}).Where("organization_id IN ?", orgIDs).Pluck("id", &trainingIDs).Error; err != nil {
		return 0, fmt.Errorf("finding organization trainings: %w", err)
	}
	if _, err := deleteTrainingsTx(tx, trainingIDs); err != nil {
		return 0, err
	}

	res := tx.Where("id IN ?", orgIDs).Delete(&model.OrganizationProfile{})
	if res.Error != nil {
		return 0, fmt.Errorf("deleting organization profiles: %w", res.Error)
	}

	if len(userIDs) > 0 {
		if err := tx.Where("id IN ?", userIDs).Delete(&model.User{}).Error; err != nil {
			return 0, fmt.Errorf("deleting organization users: %w", err)
		}
	}
	return res.RowsAffected, nil
}

// deleteFreelancersTx removes applications, then profiles, then users.
func deleteFreelancersTx(tx *gorm.DB, freelancerIDs []uuid.UUID) (int64, error) {
	if len(freelancerIDs) == 0 {
		return 0, nil
	}

	var userIDs []uuid.UUID
	if err := tx.Model(&model.FreelancerProfile{}).Where("id IN ?", freelancerIDs).Pluck("user_id", &userIDs).Error; err != nil {
		return 0, fmt.Errorf("finding freelancer users: %w", err)
	}

	if err := tx.Where("freelancer_id IN ?", freelancerIDs).Delete(&model.TrainingApplication{}).Error; err != nil {
		return 0, fmt.Errorf("deleting freelancer applications: %w", err)
	}

	res := tx.Where("id IN ?", freelancerIDs).Delete(&model.FreelancerProfile{})
	if res.Error != nil {
		return 0, fmt.Errorf("deleting freelancer profiles: %w", res.Error)
	}

	if len(userIDs) > 0 {
		if err := tx.Where("id IN ?", userIDs).Delete(&model.User{}).Error; err != nil {
			return 0, fmt.Errorf("deleting freelancer users: %w", err)
		}
	}
	return res.RowsAffected, nil
}

// deleteMaintainersTx removes profiles, then users.
func deleteMaintainersTx(tx *gorm.DB, maintainerIDs []uuid.UUID) (int64, error) {
	if len(maintainerIDs) == 0 {
		return 0, nil
	}

	var userIDs []uuid.UUID
	if err := tx.Model(&model.MaintainerProfile{}).Where("id IN ?", maintainerIDs).Pluck("user_id", &userIDs).Error; err != nil {
		return 0, fmt.Errorf("finding maintainer users: %w", err)
	}

	res := tx.Where("id IN ?", maintainerIDs).Delete(&model.MaintainerProfile{})
	if res.Error != nil {
		return 0, fmt.Errorf("deleting maintainer profiles: %w", res.Error)
	}

	if len(userIDs) > 0 {
		if err := tx.Where("id IN ?", userIDs).Delete(&model.User{}).Error; err != nil {
			return 0, fmt.Errorf("deleting maintainer users: %w", err)
		}
	}
	return res.RowsAffected, nil
}

// deleteUsersTx dispatches on each user's role so every profile type goes
// through its own cascade. Users left over (admins, or users whose profile
// is missing) are deleted directly.
func deleteUsersTx(tx *gorm.DB, userIDs []uuid.UUID) (int64, error) {
	var orgIDs, freelancerIDs, maintainerIDs []uuid.UUID
	if err := tx.Model(&model.OrganizationProfile{}).Where("user_id IN ?", userIDs).Pluck("id", &orgIDs).Error; err != nil {
		return 0, fmt.Errorf("finding organization profiles: %w", err)
	}
	if err := tx.Model(&model.FreelancerProfile{}).Where("user_id IN ?", userIDs).Pluck("id", &freelancerIDs).Error; err != nil {
		return 0, fmt.Errorf("finding freelancer profiles: %w", err)
	}
	if err := tx.Model(&model.MaintainerProfile{}).Where("user_id IN ?", userIDs).Pluck("id", &maintainerIDs).Error; err != nil {
		return 0, fmt.Errorf("finding maintainer profiles: %w", err)
	}

	if _, err := deleteOrganizationsTx(tx, orgIDs); err != nil {
		return 0, err
	}
	if _, err := deleteFreelancersTx(tx, freelancerIDs); err != nil {
		return 0, err
	}
	if _, err := deleteMaintainersTx(tx, maintainerIDs); err != nil {
		return 0, err
	}

	// Profile cascades already removed their owners; this catches the rest.
	if err := tx.Where("id IN ?", userIDs).Delete(&model.User{}).Error; err != nil {
		return 0, fmt.Errorf("deleting users: %w", err)
	}
	return int64(len(userIDs)), nil
}
