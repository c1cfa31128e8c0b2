package assist

import "fmt"

// Prompt builders for the Gemini assistant. Each prompt instructs the model
// to return only the requested text so the reply can be inserted into an
// editor field without post-processing.

func bioPrompt(name, jobTitle, company string) string {
	return fmt.Sprintf(
		"Write a short, professional, and engaging LinkedIn-style bio (max 200 characters) for a vCard.\n"+
			"Name: %s\n"+
			"Job Title: %s\n"+
			"Company: %s\n\n"+
			"Return ONLY the bio text.",
		name, jobTitle, company)
}

func emailBodyPrompt(topic, recipient string) string {
	return fmt.Sprintf(
		"Write a professional email body based on this topic: %q.\n"+
			"Recipient Name (if known, otherwise generic): %s\n"+
			"Keep it concise (under 100 words). Return ONLY the body text.",
		topic, recipient)
}

func wifiSloganPrompt(ssid string) string {
	return fmt.Sprintf(
		"Write a funny or welcoming 1-sentence slogan for a WiFi sign. The network name is %q. Return ONLY the sentence.",
		ssid)
}
