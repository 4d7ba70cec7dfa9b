package V1

const index = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <title>SSML to Speech</title>
  <style>
    body { font-family: sans-serif; padding: 20px; max-width: 860px; margin: auto; }
    textarea { width: 100%; height: 220px; font-family: monospace; }
    select, button { margin: 8px 8px 8px 0; }
    #status { margin-top: 16px; font-size: 16px; }
    #status.error { color: #b00020; }
    #status.ok { color: green; }
  </style>
</head>
<body>
  <h1>SSML to Speech</h1>
  <textarea id="ssml"><speak>Hello there. This text is split into chunks, synthesized and joined into one file.</speak></textarea>
  <div>
    <select id="voice"><option value="">(default voice)</option></select>
    <select id="format">
      <option value="MP3">MP3</option>
      <option value="WAV">WAV</option>
    </select>
    <button id="synthBtn">Synthesize</button>
    <button id="verifyBtn">Verify credentials</button>
  </div>
  <div id="status">Loading voices...</div>
  <audio id="player" controls style="display:none; width:100%; margin-top:12px"></audio>
  <p><a id="download" style="display:none">Download</a></p>

  <script>
    const statusDiv = document.getElementById("status");
    const voiceSel = document.getElementById("voice");
    const player = document.getElementById("player");
    const link = document.getElementById("download");

    function setStatus(text, cls) {
      statusDiv.textContent = text;
      statusDiv.className = cls || "";
    }

    async function loadVoices() {
      try {
        const resp = await fetch("/voices");
        const data = await resp.json();
        for (const v of data.voices || []) {
          const opt = document.createElement("option");
          opt.value = v.name;
          opt.textContent = v.name + " (" + (v.languageCodes || []).join(",") + ", " + v.ssmlGender + ")";
          voiceSel.appendChild(opt);
        }
        setStatus((data.voices || []).length + " voices loaded", "ok");
      } catch (e) {
        setStatus("Failed to load voices: " + e, "error");
      }
    }

    document.getElementById("synthBtn").onclick = async () => {
      setStatus("Synthesizing...");
      player.style.display = "none";
      link.style.display = "none";
      const body = {
        ssml: document.getElementById("ssml").value,
        voiceName: voiceSel.value,
        audioFormat: document.getElementById("format").value,
      };
      const resp = await fetch("/synthesize", {
        method: "POST",
        headers: { "Content-Type": "application/json" },
        body: JSON.stringify(body),
      });
      const data = await resp.json();
      if (!resp.ok) {
        let msg = data.error || "Synthesis failed";
        if (data.hint) msg += " " + data.hint;
        if (data.sampleVoices) msg += " e.g. " + data.sampleVoices.join(", ");
        if (data.details) msg += " (" + data.details + ")";
        setStatus(msg, "error");
        return;
      }
      setStatus(data.message + ": " + data.chunks + " chunk(s), voice " + data.voiceUsed, "ok");
      player.src = data.downloadUrl;
      player.style.display = "block";
      link.href = data.downloadUrl;
      link.style.display = "inline";
    };

    document.getElementById("verifyBtn").onclick = async () => {
      const resp = await fetch("/verify");
      const data = await resp.json();
      if (resp.ok) {
        setStatus(data.message + (data.projectId ? " (" + data.projectId + ")" : ""), "ok");
      } else {
        setStatus(data.error + ": " + (data.details || ""), "error");
      }
    };

    loadVoices();
  </script>
</body>
</html>
`
