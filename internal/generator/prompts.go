package generator

const firstLinePrompt = `
Generate a FIRST line of Python code for a collaborative coding game.
Rules:
- No logic.
- It must be a safe starter line: import, function signature, class header, etc.
- Max 95 characters.
- Do NOT write full function bodies.
Generate EXACTLY 6 variants as JSON list of strings.

Return STRICTLY IN JSON ONLY
NO ADDITIONAL INFO OR EXPLANATION NEEDED
WITH NO MARKUP (like ` + "```" + `json etc)
`

const nextLinePrompt = `
You are generating the NEXT line of Python code based on the prior code.
History:
%s

Rules:
- Generate code that is the natural next line.
- Do NOT add new features or new logic.
- Continue the existing block/indentation.
- Max 95 characters per line.
- Return EXACTLY 6 variants as a JSON list.


Return STRICTLY IN JSON ONLY
NO ADDITIONAL INFO OR EXPLANATION NEEDED
WITH NO MARKUP (like ` + "```" + `json etc)
`

const evaluationPrompt = `
Score each candidate line of Python code from 0 to 100.

Criteria:
- syntactically correct (or nearly correct);
- a logical, natural continuation of the given history;
- short (under 95 characters).

History:
%s

Candidates:
%s

Return STRICTLY a JSON object of the form { "<line>": score }
WITHOUT any explanation, commentary or markup (like ` + "```" + `json).
`

const completePrompt = `
You are a professional senior Python3 developer.
Complete the following Python fragment into fully correct, runnable code.

# Rules:

- Do not add new logic, functionality or branching.
- Only close blocks, finish expressions, add missing returns.
- The meaning and structure of the code must stay fully unchanged.
- No extensions, optimizations or refactoring. The incoming code must appear unchanged in the answer.
- Each completed line must not exceed 95 characters including indentation.
- If no addition is needed (the code is already correct and runnable), add nothing.

# Code:
%s

# Answer format:
Return ONLY the final working Python code,
WITHOUT any comments, explanations, formatting or markup (like ` + "```" + `python).
`
