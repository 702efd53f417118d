package summarize

// DefaultInstruction is the built-in summary instruction used when the
// caller supplies no custom prompt.
const DefaultInstruction = `CRITICAL FORMATTING RULES:
1. Use descriptive labels followed by hyphens and content
2. Use **bold** for research tasks and action items
3. Keep formatting clean with descriptive categories
4. Use hyphens (-) after labels

Format example:

Discussion point:
 - Quantum computers and their ability to factor large numbers efficiently.
Key concept:
 - Quantum computers' efficiency in factoring is not directly related to quantum mechanics, but rather to their ability to find periods of periodic functions.
Discussion point:
 - The connection between period finding and factoring large numbers.
Key point:
 - Efficient period finding allows for efficient factoring.
**Research: Further investigate the purely arithmetic reasons connecting period finding and factoring.**
Key application:
 - The implication of efficient factoring for breaking RSA encryption.
Historical note:
 - Peter Shor's discovery of quantum computers' super efficiency in period finding (1994-1995).
Key concern:
 - The potential threat to internet security posed by quantum computers.

STRICT REQUIREMENTS:
Use descriptive labels like "Discussion point:", "Key concept:", "Key point:", "Historical note:", etc.
Follow each label with a line break and hyphen (-) with content
Use **bold** for research tasks and action items
No bullet points (•) or other symbols`

// BuildPrompt concatenates the instruction and transcript with the fixed
// separator convention the model is tuned against: instruction, blank line,
// a literal "Transcript:" label, newline, transcript body.
func BuildPrompt(instruction, transcript string) string {
	if instruction == "" {
		instruction = DefaultInstruction
	}
	return instruction + "\n\nTranscript:\n" + transcript
}
