package catalog

const docTechnical = `# Technical Writing

Drafts technical documents with consistent terminology, explicit
assumptions, and a structure that survives review.

## Works well for

- API references and integration guides
- Runbooks and incident writeups
- Design documents with decision records

Pair with the Scaffolder to lay out sections before drafting.
`

const docStyleExtractor = `# Style Extractor

Reads sample text and produces a reusable style guide: voice, register,
sentence rhythm, formatting conventions, and banned constructions.

Feed the extracted guide to the Rewriter to apply it to new drafts.
`

const docRewriter = `# Rewriter

Reworks an existing draft against a target style and audience without
changing its claims. Keeps citations and code blocks intact.

## Controls

- target reading level
- tone presets or an extracted style guide
- length budget
`

const docMathFormatter = `# Math Formatter

Normalizes mathematical notation across a document and typesets inline
and display formulas. Flags symbols used with conflicting meanings.
`

const docReasoningStudio = `# Reasoning Studio

Workbench for multi-step reasoning: expand a chain step by step, probe
alternatives at any node, and fold the surviving path back into prose.

## Views

- chain view with per-step confidence
- branch compare
`

const docScaffolder = `# Scaffolder

Generates outlines and section skeletons from a short brief. Each
section carries a one-line intent so later drafting stays on scope.
`

const docRequestSplitter = `# Request Splitter

Breaks a large request into ordered subtasks with explicit inputs and
outputs, sized so each subtask fits a single focused pass.

The resulting plan feeds the Agent Designer directly.
`

const docPromptEnhancer = `# Prompt Enhancer

Tightens a prompt: adds missing context, pins output format, surfaces
implicit constraints, and strips contradictory instructions.
`

const docAgentDesigner = `# Agent Designer

Composes tool-using agents: role, available tools, handoff conditions,
and the failure behavior for each step of a pipeline.
`

const docChatSandbox = `# Chat Sandbox

Free-form conversation grounded in the working draft. Nothing said here
modifies the draft until explicitly applied.
`

const docFlashcards = `# Flashcards

Turns source material into question and answer decks for spaced review.
Cards link back to the paragraph they were derived from.
`
