package genquiz

import "fmt"

// maxPromptChars bounds how much document text is embedded in the prompt.
const maxPromptChars = 8000

const systemPrompt = "You are a JSON generator. Output only valid JSON arrays. Never explain, never comment, never add text. Only JSON."

const userPromptTemplate = `Create EXACTLY 6 quiz questions STRICTLY from this document content: %s

CRITICAL REQUIREMENTS:
- ALL questions MUST be based on information EXPLICITLY found in the provided text
- DO NOT create generic questions
- DO NOT use outside knowledge
- ONLY use facts, names, dates, concepts directly mentioned in the document
- STOP after 6 questions

ANSWER FORMAT RULES:
1. For multiple-choice: "answer" must be the EXACT FULL TEXT of the correct option
2. For true-false: "answer" must be exactly "True" or "False"
3. For matching: Include BOTH items to match AND their matches in the options array. Format: ["Item1","Item2","Match1","Match2"] and answer: "Item1-Match1,Item2-Match2"

MATCHING QUESTION REQUIREMENTS:
- Options array MUST contain ALL items: both things to match AND their corresponding matches
- Do NOT put matches in the answer that aren't in the options array
- Example: If matching people with roles, options should be ["Person1","Person2","Role1","Role2"] not just ["Person1","Person2"]

EXAMPLES (using document content):
{"question":"What specific company/organization is mentioned in the document?","options":["[Company from doc]","[Wrong option]","[Wrong option]","[Wrong option]"],"answer":"[Company from doc]","type":"multiple-choice","level":"Beginner","topic":"Organizations"}

{"question":"According to the document, [specific fact from text]","options":["True","False"],"answer":"True","type":"true-false","level":"Intermediate","topic":"Facts"}

{"question":"Match the person with their role","options":["Dr. John Smith","Mary Johnson","CEO","CTO"],"answer":"Dr. John Smith-CEO,Mary Johnson-CTO","type":"matching","level":"Intermediate","topic":"Personnel"}

Output: Array of exactly 6 questions (2 multiple-choice, 2 true-false, 2 matching) based ONLY on the provided document content.`

// BuildUserPrompt embeds the document text into the generation prompt,
// truncating oversized documents with a marker.
func BuildUserPrompt(text string) string {
	if len(text) > maxPromptChars {
		text = text[:maxPromptChars] + "..."
	}
	return fmt.Sprintf(userPromptTemplate, text)
}
