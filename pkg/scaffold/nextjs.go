package scaffold

var nextjsFiles = []FileSpec{
	{
		Path: "README.md",
		Template: `# {{ .Name }}

{{ .Description }}

## Development

` + "```bash" + `
npm install
npm run dev
` + "```" + `
`,
	},
	{
		Path: "package.json",
		Template: `{
  "name": "{{ .Name }}",
  "version": "0.1.0",
  "private": true,
  "scripts": {
    "dev": "next dev",
    "build": "next build",
    "start": "next start",
    "lint": "next lint"
  },
  "dependencies": {
    "next": "^15.0.0",
    "react": "^19.0.0",
    "react-dom": "^19.0.0"
  },
  "devDependencies": {
    "@types/node": "^22",
    "@types/react": "^19",
    "typescript": "^5"
  }
}
`,
	},
	{
		Path: "tsconfig.json",
		Template: `{
  "compilerOptions": {
    "target": "ES2022",
    "lib": ["dom", "dom.iterable", "esnext"],
    "allowJs": true,
    "skipLibCheck": true,
    "strict": true,
    "noEmit": true,
    "esModuleInterop": true,
    "module": "esnext",
    "moduleResolution": "bundler",
    "resolveJsonModule": true,
    "isolatedModules": true,
    "jsx": "preserve",
    "incremental": true,
    "plugins": [{ "name": "next" }],
    "paths": { "@/*": ["./*"] }
  },
  "include": ["next-env.d.ts", "**/*.ts", "**/*.tsx", ".next/types/**/*.ts"],
  "exclude": ["node_modules"]
}
`,
	},
	{
		Path: "next.config.mjs",
		Template: `/** @type {import('next').NextConfig} */
const nextConfig = {};

export default nextConfig;
`,
	},
	{
		Path: "app/layout.tsx",
		Template: `import type { Metadata } from "next";

export const metadata: Metadata = {
  title: "{{ .Name }}",
  description: "{{ .Description }}",
};

export default function RootLayout({
  children,
}: Readonly<{ children: React.ReactNode }>) {
  return (
    <html lang="en">
      <body>{children}</body>
    </html>
  );
}
`,
	},
	{
		Path: "app/page.tsx",
		Template: `export default function Home() {
  return (
    <main>
      <h1>{{ .Name }}</h1>
      <p>{{ .Description }}</p>
    </main>
  );
}
`,
	},
	{
		Path: "app/globals.css",
		Template: `:root {
  color-scheme: light dark;
}

body {
  margin: 0;
  font-family: system-ui, sans-serif;
}
`,
	},
	{
		Path: ".gitignore",
		Template: `node_modules/
.next/
out/
.env*.local
*.tsbuildinfo
next-env.d.ts
`,
	},
}
