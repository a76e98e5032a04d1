package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"video-tube/domain/dto"
	"video-tube/domain/model"
	"video-tube/domain/repository"
)

type ISubscriptionUsecase interface {
	Toggle(ctx context.Context, channelID, subscriberID string) (dto.ToggleResult, error)
	ListSubscribers(ctx context.Context, channelID string) ([]model.PublicUser, error)
	ListSubscriptions(ctx context.Context, subscriberID string) ([]model.PublicUser, error)
}

type subscriptionUsecase struct {
	subscriptionRepo repository.ISubscription
}

func NewSubscriptionUsecase(subscriptionRepo repository.ISubscription) ISubscriptionUsecase {
	return &subscriptionUsecase{subscriptionRepo: subscriptionRepo}
}

func (u *subscriptionUsecase) Toggle(ctx context.Context, channelID, subscriberID string) (dto.ToggleResult, error) {
	channel, err := bson.ObjectIDFromHex(channelID)
	if err != nil {
		return dto.ToggleResult{}, model.NewBadRequest("Invalid channel id")
	}
	subscriber, err := callerObjectID(subscriberID)
	if err != nil {
		return dto.ToggleResult{}, err
	}
	if channel == subscriber {
		return dto.ToggleResult{}, model.NewBadRequest("Cannot subscribe to your own channel")
	}

	removed, err := u.subscriptionRepo.Remove(ctx, channel, subscriber)
	if err != nil {
		return dto.ToggleResult{}, err
	}
	if removed {
		return dto.ToggleResult{Toggled: ToggleRemoved}, nil
	}
	if _, err := u.subscriptionRepo.Add(ctx, channel, subscriber); err != nil {
		return dto.ToggleResult{}, err
	}
	return dto.ToggleResult{Toggled: ToggleAdded}, nil
}

func (u *subscriptionUsecase) ListSubscribers(ctx context.Context, channelID string) ([]model.PublicUser, error) {
	channel, err := bson.ObjectIDFromHex(channelID)
	if err != nil {
		return nil, model.NewBadRequest("Invalid channel id")
	}
	return u.subscriptionRepo.ListSubscribers(ctx, channel)
}

func (u *subscriptionUsecase) ListSubscriptions(ctx context.Context, subscriberID string) ([]model.PublicUser, error) {
	subscriber, err := bson.ObjectIDFromHex(subscriberID)
	if err != nil {
		return nil, model.NewBadRequest("Invalid subscriber id")
	}
	return u.subscriptionRepo.ListChannels(ctx, subscriber)
}
