package enums

type Platform string

const (
	PlatformTikTok    Platform = "tiktok"
	PlatformInstagram Platform = "instagram"
	PlatformShorts    Platform = "shorts"
	PlatformTwitter   Platform = "twitter"
)
