// Package mcpserver exposes chroma's palette operations as Model Context
// Protocol tools, so AI assistants can generate, convert and classify
// colours.
//
// Tools:
//   - generate_palette: five colours for a harmony scheme, optionally from
//     a fixed base colour
//   - detect_harmony: classify five hex colours
//   - convert_color: hex to RGB/HSL plus the legible text colour
//   - text_color: black or white text for an HSL background
//
// The server speaks either stdio (for editor integrations) or SSE over
// HTTP, selected by config.MCPConfig.Transport.
package mcpserver
