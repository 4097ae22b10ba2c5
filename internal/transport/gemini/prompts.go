package gemini

// Prompt templates for the collaborator. Responses must be JSON only; the
// parser strips markdown fences anyway because models add them regardless.

const sectionFeedbackPrompt = `You are a resume review engine.

Grade each resume section (summary, experience, projects, skills, education)
against the job description. For every section return:
- "status": one of "missing", "weak", "average", "strong"
- "comment": one actionable sentence

Return JSON only, shaped as:
{"summary": {"status": "...", "comment": "..."}, ...}

Resume:
%s

Job description:
%s`

const skillClassificationPrompt = `You are a skill classification engine.

Classify each of the following skills into one of these categories:
- Programming Language
- Framework / Library
- Cloud / DevOps Tool
- Data / AI Tool
- Testing Tool
- Other Technical Skill

Return JSON only, mapping each skill to its category.

Skills:
%s`

const resumeRewritePrompt = `You are a resume rewriting engine.

Rewrite the resume's summary, experience and projects sections so they target
the job description below. Keep every claim grounded in the original resume;
never invent employers, dates or technologies.

Return JSON only, shaped as:
{"summary": "...", "experience": ["...", "..."], "projects": ["...", "..."]}

Resume:
%s

Job description:
%s`
