package ext

import (
	"snaptikbot/ext/shorts"
	"snaptikbot/ext/snap"
	"snaptikbot/ext/twitter"
	"snaptikbot/models"
)

var List = []*models.Resolver{
	snap.TikTokResolver,
	snap.InstagramResolver,
	shorts.Resolver,
	twitter.Resolver,
}
