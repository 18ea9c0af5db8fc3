package core

const (
	startCommand = "/start"

	greetingMessage = "Hi! I download videos from TikTok, Instagram, YouTube Shorts and Twitter.\n\n" +
		"Send me a link and I'll reply with the video."
	processingMessage  = "⏱️ Processing..."
	badURLMessage      = "❌ Only TikTok, Instagram or Shorts links are accepted."
	cannotProcessVideo = "❌ Cannot process video."
	videoTooLarge      = "❌ Video is too large to send it."

	// returned by sendVideo when telegram can't fetch the URL,
	// in practice because the file is over the 20MB URL upload limit
	tooLargeDescription = "Bad Request: wrong file identifier/HTTP URL specified"
)
