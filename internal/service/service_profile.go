package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/Dev-vesper/notepad/internal/logger"
	"github.com/Dev-vesper/notepad/internal/store"
	"github.com/Dev-vesper/notepad/models"
)

type profileService struct {
	storage store.DocumentStorage

	logger *logger.Logger
}

func NewProfileService(storage store.DocumentStorage, logger *logger.Logger) ProfileService {
	return &profileService{
		storage: storage,
		logger:  logger,
	}
}

func (p *profileService) ListUsers(ctx context.Context) ([]string, error) {
	return p.storage.ListUsers(ctx)
}

// ViewProfile reads the profile and notes of username in one locked read.
// viewer may be empty for anonymous visitors.
func (p *profileService) ViewProfile(ctx context.Context, username, viewer string) (models.ProfileView, error) {
	var view models.ProfileView

	err := p.storage.View(ctx, []string{username}, func(tx store.DocumentTx) error {
		profile, err := tx.Profile(username)
		if err != nil {
			return err
		}
		notes, err := tx.Notes(username)
		if err != nil {
			return err
		}

		view = models.NewProfileView(profile.Clone(), slices.Clone(*notes), viewer)
		return nil
	})
	if err != nil {
		return models.ProfileView{}, profileError(username, err)
	}

	return view, nil
}

func (p *profileService) ToggleProfileLike(ctx context.Context, target, liker string) (models.LikeState, error) {
	var state models.LikeState

	err := p.storage.Update(ctx, []string{target}, func(tx store.DocumentTx) error {
		profile, err := tx.Profile(target)
		if err != nil {
			return err
		}

		if profile.IsLikedBy(liker) {
			profile.ProfileLikes = slices.DeleteFunc(profile.ProfileLikes, func(name string) bool { return name == liker })
		} else {
			profile.ProfileLikes = append(profile.ProfileLikes, liker)
			state.Liked = true
		}
		state.Likes = len(profile.ProfileLikes)

		return nil
	})
	if err != nil {
		return models.LikeState{}, profileError(target, err)
	}

	return state, nil
}

func (p *profileService) CommentProfile(ctx context.Context, target string, comment models.ProfileComment) (models.ProfileComment, error) {
	user, err := p.storage.ForUser(ctx, target, false)
	if err != nil {
		return models.ProfileComment{}, profileError(target, err)
	}

	added, err := user.AddProfileComment(ctx, comment.Author, comment.Text)
	if err != nil {
		logger.FromContextOr(ctx, p.logger).Err(err).Str("func", "*profileService.CommentProfile").Str("target", target).Msg("error adding profile comment")
		return models.ProfileComment{}, profileError(target, err)
	}

	return added, nil
}

func (p *profileService) DeleteAccount(ctx context.Context, username string) error {
	if err := p.storage.DeleteUser(ctx, username); err != nil {
		return fmt.Errorf("error deleting account: %w", err)
	}

	logger.FromContextOr(ctx, p.logger).Info().Str("username", username).Msg("account deleted")
	return nil
}

// profileError reports a missing user as ErrProfileNotFound while keeping
// the store error in the chain.
func profileError(username string, err error) error {
	if errors.Is(err, store.ErrUserNotFound) {
		return fmt.Errorf("%w: %q: %w", ErrProfileNotFound, username, err)
	}
	return err
}
