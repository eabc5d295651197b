// internal/repository/mock_gen.go
package repository

//go:generate mockgen -source=./user.go -destination=../mocks/mock_user_repository.go -package=mocks UserRepositoryIface
//go:generate mockgen -source=./organization.go -destination=../mocks/mock_organization_repository.go -package=mocks OrganizationRepositoryIface
//go:generate mockgen -source=./profile.go -destination=../mocks/mock_profile_repository.go -package=mocks MaintainerRepositoryIface,FreelancerRepositoryIface
//go:generate mockgen -source=./training.go -destination=../mocks/mock_training_repository.go -package=mocks TrainingRepositoryIface,ApplicationRepositoryIface,FeedbackRepositoryIface
//go:generate mockgen -source=./reference.go -destination=../mocks/mock_reference_repository.go -package=mocks ReferenceRepositoryIface
//go:generate mockgen -source=./action_log.go -destination=../mocks/mock_action_log_repository.go -package=mocks ActionLogRepositoryIface
