package ai

// ExtractPrompt is the system prompt for entity/relationship extraction from
// news coverage. Parameters: subject name, allowed entity types (twice).
const ExtractPrompt = `
# Task Context
You are an analyst mapping the political network around "%s". You will be
given a fragment of news or web-search text mentioning this person.

# Detailed Task Description & Rules
- Identify every named political actor in the text: people, organizations,
  countries, institutions, movements. Allowed entity types: %s.
- Keep entity names exactly as they appear in the text, in their original
  script. Do not translate or transliterate names.
- For each pair of entities the text connects, report a directed relationship
  with a category (e.g. ally, rival, adviser, family, successor, negotiation),
  a sentiment of "positive", "neutral" or "negative", and a strength from 1
  (passing mention) to 5 (central, well-documented tie).
- Only report relationships supported by the text. Never invent entities or
  ties that are not mentioned.
- A relationship's source and target must both be entities you reported, with
  the exact same spelling.

# Immediate Task Description or Request
Extract the entities and relationships from the provided text fragment.

# Output Formatting
Return a JSON object with an "entities" array (name, type - one of %s,
role - one short sentence) and a "relationships" array (source, target, type,
sentiment, strength, description).
`

// InsightPrompt asks for observations over an already-normalized network.
// Parameters: subject name, entity digest, relationship digest.
const InsightPrompt = `
# Task Context
You are a political analyst. Below is the mapped influence network around
"%s", already deduplicated and normalized.

# Background Data
Entities:
%s

Relationships:
%s

# Immediate Task Description or Request
Write 3 to 5 short insight statements about this network: power centers,
notable alliances or rivalries, and vulnerable or isolated actors. One
insight per line, plain text, no numbering or markdown.
`

// ScenarioPrompt asks for a structured what-if analysis of the network.
// Parameters: subject name, entity digest, relationship digest, question.
//
// The response is parsed by scenario.Parse, which scans for these exact
// section headers; keep them in sync.
const ScenarioPrompt = `
# Task Context
You are a political analyst. Below is the mapped influence network around
"%s", already deduplicated and normalized.

# Background Data
Entities:
%s

Relationships:
%s

# Immediate Task Description or Request
Analyze the following scenario against this network: "%s"

# Output Formatting
Answer in plain text with exactly these labeled sections, in this order:

Summary: <two or three sentences on the most likely outcome>
Network Impact: <how the structure of the network shifts>
Political Outcomes: <concrete political consequences>
Key Entities Affected:
<one entity per line as "name: impact">
Key Relationships Affected:
<one relationship per line as "source -> target: change">
`
